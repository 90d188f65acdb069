package scene

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/rtscene"
)

const eps = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func boundsNear(a, b rtscene.Bounds3) bool {
	return vecNear(a.Min, b.Min) && vecNear(a.Max, b.Max)
}

// triangleShape is a single triangle inside the unit cube.
func triangleShape(transform mgl32.Mat4) Shape {
	return Shape{
		Kind:      ShapeTriangleMesh,
		Transform: transform,
		Material: rtscene.Material{
			Ka: mgl32.Vec3{0.1, 0.2, 0.3},
			Kd: mgl32.Vec3{0.4, 0.5, 0.6},
			Ks: mgl32.Vec3{0.7, 0.8, 0.9},
		},
		Bounds: rtscene.NewBounds3(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}),
		Mesh: &TriangleMeshData{
			Indices: []uint32{0, 1, 2},
			Points: []mgl32.Vec3{
				{0, 0, 0},
				{1, 0, 0},
				{1, 1, 1},
			},
		},
	}
}

func sphereShape(transform mgl32.Mat4) Shape {
	const radius = 1.25
	sphere := SphereData{Radius: radius, ZMin: -radius, ZMax: radius, PhiMax: 360}
	return Shape{
		Kind:      ShapeSphere,
		Transform: transform,
		Material: rtscene.Material{
			Ka: mgl32.Vec3{0.7, 0.8, 0.9},
			Kd: mgl32.Vec3{0.4, 0.5, 0.6},
			Ks: mgl32.Vec3{0.1, 0.2, 0.3},
		},
		Bounds: SphereBounds(sphere),
		Sphere: &sphere,
	}
}

func TestShapeKindPrimitiveKind(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		want rtscene.PrimitiveKind
	}{
		{ShapeTriangleMesh, rtscene.PrimitiveTriangle},
		{ShapeSphere, rtscene.PrimitiveSphere},
		{ShapeMeshFile, rtscene.PrimitiveTriangle},
	}
	for _, tt := range tests {
		if got := tt.kind.PrimitiveKind(); got != tt.want {
			t.Errorf("%v.PrimitiveKind() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestSphereBoundsFull(t *testing.T) {
	got := SphereBounds(SphereData{Radius: 1.25, ZMin: -1.25, ZMax: 1.25, PhiMax: 360})
	want := rtscene.NewBounds3(mgl32.Vec3{-1.25, -1.25, -1.25}, mgl32.Vec3{1.25, 1.25, 1.25})
	if !boundsNear(got, want) {
		t.Errorf("SphereBounds = %v, want %v", got, want)
	}
}

func TestSphereBoundsHemisphere(t *testing.T) {
	// The equator survives, so the x/y extent stays at the radius.
	got := SphereBounds(SphereData{Radius: 1, ZMin: -1, ZMax: 0, PhiMax: 360})
	want := rtscene.NewBounds3(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 0})
	if !boundsNear(got, want) {
		t.Errorf("SphereBounds = %v, want %v", got, want)
	}
}

func TestSphereBoundsClippedAboveEquator(t *testing.T) {
	got := SphereBounds(SphereData{Radius: 1.25, ZMin: 0.5, ZMax: 1.25, PhiMax: 360})
	rxy := math32.Sqrt(1.25*1.25 - 0.5*0.5)
	want := rtscene.NewBounds3(mgl32.Vec3{-rxy, -rxy, 0.5}, mgl32.Vec3{rxy, rxy, 1.25})
	if !boundsNear(got, want) {
		t.Errorf("SphereBounds = %v, want %v", got, want)
	}
}

func TestShapeWorldBoundsTranslated(t *testing.T) {
	shape := triangleShape(mgl32.Translate3D(1, 2, 3))
	got := shape.WorldBounds()
	want := rtscene.NewBounds3(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 3, 4})
	if !boundsNear(got, want) {
		t.Errorf("WorldBounds = %v, want %v", got, want)
	}
}

func TestShapeMaterialFlags(t *testing.T) {
	shape := triangleShape(mgl32.Ident4())
	if got := shape.MaterialFlags(); got != rtscene.MaterialNone {
		t.Errorf("MaterialFlags() = %v, want none", got)
	}

	shape.Material.AlphaMapFileName = "mask.png"
	if got := shape.MaterialFlags(); got != rtscene.MaterialAlphaMap {
		t.Errorf("MaterialFlags() = %v, want alpha", got)
	}
}

func TestMeshDataInfoAndBounds(t *testing.T) {
	data := &MeshData{
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		Points: []mgl32.Vec3{
			{0, 0, 0},
			{1, 0, 0},
			{1, 1, 0},
			{0, 1, 2},
		},
		Normals: []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
	}

	info := data.Info()
	if info.NumVertices != 4 {
		t.Errorf("NumVertices = %d, want 4", info.NumVertices)
	}
	if info.NumTriangles != 2 {
		t.Errorf("NumTriangles = %d, want 2", info.NumTriangles)
	}
	if !info.HasNormals {
		t.Error("HasNormals = false, want true")
	}
	if info.HasUVs {
		t.Error("HasUVs = true, want false")
	}

	want := rtscene.NewBounds3(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 2})
	if got := data.Bounds(); !boundsNear(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func objectDescription(instanceTransform mgl32.Mat4, shapes ...Shape) *Description {
	bounds := rtscene.EmptyBounds()
	for i := range shapes {
		bounds = bounds.Union(shapes[i].WorldBounds())
	}
	desc := &Description{
		Objects:      map[string]Object{"object": {Name: "object", Bounds: bounds}},
		ObjectShapes: map[string][]Shape{"object": shapes},
		ObjectInstances: []ObjectInstance{
			{Name: "object", Transform: instanceTransform, Bounds: bounds},
		},
		InstanceCounts: map[string]int{"object": 1},
	}
	desc.Bounds = desc.ComputeBounds()
	return desc
}

func TestDescriptionValidateEmpty(t *testing.T) {
	desc := &Description{}
	if err := desc.Validate(); !errors.Is(err, rtscene.ErrEmptyScene) {
		t.Errorf("Validate() = %v, want ErrEmptyScene", err)
	}
}

func TestDescriptionValidateUnknownObject(t *testing.T) {
	desc := &Description{
		ObjectInstances: []ObjectInstance{{Name: "ghost"}},
	}
	if err := desc.Validate(); !errors.Is(err, rtscene.ErrUnknownObject) {
		t.Errorf("Validate() = %v, want ErrUnknownObject", err)
	}
}

func TestDescriptionValidateObjectWithoutShapes(t *testing.T) {
	desc := &Description{
		Objects:         map[string]Object{"hollow": {Name: "hollow"}},
		ObjectShapes:    map[string][]Shape{},
		ObjectInstances: []ObjectInstance{{Name: "hollow"}},
	}
	if err := desc.Validate(); !errors.Is(err, rtscene.ErrUnknownObject) {
		t.Errorf("Validate() = %v, want ErrUnknownObject", err)
	}
}

func TestDescriptionValidateOK(t *testing.T) {
	desc := objectDescription(mgl32.Ident4(), triangleShape(mgl32.Ident4()))
	if err := desc.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestDescriptionComputeBounds(t *testing.T) {
	free := triangleShape(mgl32.Ident4())
	desc := objectDescription(mgl32.Translate3D(10, 0, 0), triangleShape(mgl32.Ident4()))
	desc.FreeShapes = []Shape{free}
	desc.Bounds = desc.ComputeBounds()

	want := rtscene.NewBounds3(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{11, 1, 1})
	if !boundsNear(desc.Bounds, want) {
		t.Errorf("ComputeBounds() = %v, want %v", desc.Bounds, want)
	}
}

func TestInstanceWorldBounds(t *testing.T) {
	desc := objectDescription(mgl32.Translate3D(1, 2, 3), triangleShape(mgl32.Ident4()))
	got := desc.ObjectInstances[0].WorldBounds()
	want := rtscene.NewBounds3(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 3, 4})
	if !boundsNear(got, want) {
		t.Errorf("WorldBounds() = %v, want %v", got, want)
	}
}

func TestInstanceShapes(t *testing.T) {
	desc := objectDescription(mgl32.Ident4(), triangleShape(mgl32.Ident4()), sphereShape(mgl32.Ident4()))

	if got := desc.InstanceShapes(0); len(got) != 2 {
		t.Errorf("InstanceShapes(0) returned %d shapes, want 2", len(got))
	}
	if got := desc.InstanceShapes(1); got != nil {
		t.Errorf("InstanceShapes(1) = %v, want nil", got)
	}
	if got := desc.InstanceShapes(-1); got != nil {
		t.Errorf("InstanceShapes(-1) = %v, want nil", got)
	}
}
