package domain

import (
	"github.com/google/uuid"
)

type ComponentKind string

const (
	ComponentCPU     ComponentKind = "cpu"
	ComponentGPU     ComponentKind = "gpu"
	ComponentRAM     ComponentKind = "ram"
	ComponentStorage ComponentKind = "storage"
)

type BenchmarkDimension string

const (
	DimensionSingleThread BenchmarkDimension = "single_thread"
	DimensionMultiThread  BenchmarkDimension = "multi_thread"
	Dimension3DGraphics   BenchmarkDimension = "3d_graphics"
	DimensionMemory       BenchmarkDimension = "memory"
	DimensionDisk         BenchmarkDimension = "disk"
)

// PrimaryDimension is the benchmark dimension used for cohort ranking and
// the first-class dollar_per_mark_single listing field.
const PrimaryDimension = DimensionSingleThread

// ComponentSpec is a catalog record. The engine only reads these; a missing
// dimension simply has no entry in Marks.
type ComponentSpec struct {
	ComponentID uuid.UUID
	Kind        ComponentKind
	Name        string
	Marks       map[BenchmarkDimension]float64
}
