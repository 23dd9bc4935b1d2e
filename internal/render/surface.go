// Package render draws dashboard views onto a host-provided surface.
//
// Views are pure consumers: they read an already-computed dataset
// snapshot (and, for the cluster map, precomputed geometry) and write
// markup into named mount points or values into named display slots.
// No view ever mutates the dataset it renders.
package render

import (
	"bytes"
	"io"
)

// Mount point and display slot names on the dashboard surface.
const (
	MountClusterMap = "cluster-map"
	MountGapTable   = "gap-table"

	SlotTotalSkills    = "total-skills"
	SlotTotalClusters  = "total-clusters"
	SlotTotalEmployees = "total-employees"
	SlotAvgProficiency = "avg-proficiency"
)

// Surface is the host document views draw into: named mount points for
// markup fragments and named display slots for scalar values.
type Surface interface {
	// Mount returns a writer for the named mount point.
	Mount(name string) (io.Writer, error)

	// SetSlot writes a display value into the named slot.
	SetSlot(name, value string) error
}

// HTMLSurface collects fragments and slot values in memory for the page
// assembler. A fresh surface is used for every render pass.
type HTMLSurface struct {
	mounts map[string]*bytes.Buffer
	slots  map[string]string
}

// NewHTMLSurface creates an empty surface.
func NewHTMLSurface() *HTMLSurface {
	return &HTMLSurface{
		mounts: map[string]*bytes.Buffer{},
		slots:  map[string]string{},
	}
}

// Mount returns a writer for the named mount point, creating it on first
// use.
func (s *HTMLSurface) Mount(name string) (io.Writer, error) {
	buf, ok := s.mounts[name]
	if !ok {
		buf = &bytes.Buffer{}
		s.mounts[name] = buf
	}
	return buf, nil
}

// SetSlot writes a display value into the named slot.
func (s *HTMLSurface) SetSlot(name, value string) error {
	s.slots[name] = value
	return nil
}

// Fragment returns the markup written to the named mount point.
func (s *HTMLSurface) Fragment(name string) string {
	if buf, ok := s.mounts[name]; ok {
		return buf.String()
	}
	return ""
}

// Slot returns the value written to the named display slot.
func (s *HTMLSurface) Slot(name string) string {
	return s.slots[name]
}
