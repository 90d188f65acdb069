package rtscene

import "testing"

func TestMaterialFlagsDerivation(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		want     MaterialFlags
	}{
		{"untextured", Material{}, MaterialNone},
		{"alpha only", Material{AlphaMapFileName: "mask.png"}, MaterialAlphaMap},
		{"diffuse only", Material{DiffuseMapFileName: "albedo.png"}, MaterialDiffuseMap},
		{"both", Material{AlphaMapFileName: "mask.png", DiffuseMapFileName: "albedo.png"},
			MaterialAlphaMap | MaterialDiffuseMap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.material.Flags(); got != tt.want {
				t.Errorf("Flags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialFlagsHas(t *testing.T) {
	f := MaterialAlphaMap | MaterialDiffuseMap
	if !f.Has(MaterialAlphaMap) || !f.Has(MaterialDiffuseMap) || !f.Has(f) {
		t.Error("combined flags should contain both maps")
	}
	if MaterialAlphaMap.Has(MaterialDiffuseMap) {
		t.Error("alpha-only flags should not contain diffuse")
	}
}

func TestMaterialFlagsString(t *testing.T) {
	tests := []struct {
		flags MaterialFlags
		want  string
	}{
		{MaterialNone, "none"},
		{MaterialAlphaMap, "alpha"},
		{MaterialDiffuseMap, "diffuse"},
		{MaterialAlphaMap | MaterialDiffuseMap, "alpha|diffuse"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

func TestHitGroupFor(t *testing.T) {
	if got := HitGroupFor(PrimitiveTriangle); got != HitGroupTriangle {
		t.Errorf("HitGroupFor(triangle) = %d, want %d", got, HitGroupTriangle)
	}
	if got := HitGroupFor(PrimitiveSphere); got != HitGroupSphere {
		t.Errorf("HitGroupFor(sphere) = %d, want %d", got, HitGroupSphere)
	}
}
