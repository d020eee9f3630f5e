package scene

import (
	"errors"
	"fmt"
)

// ErrSharedShape is returned when a shape appears more than once in a tree.
var ErrSharedShape = errors.New("scene: shape reachable through more than one parent")

// Validate checks that root is a well-formed tree: every node was built by
// NewShape, composites have no nil children, and no node is reachable twice
// (which also rules out cycles).
func Validate(root *Shape) error {
	if root == nil {
		return errors.New("scene: nil root")
	}
	seen := make(map[*Shape]bool)
	return validate(root, seen, "root")
}

func validate(s *Shape, seen map[*Shape]bool, path string) error {
	if seen[s] {
		return fmt.Errorf("%w: %s", ErrSharedShape, path)
	}
	seen[s] = true

	if s.geometry == nil {
		return fmt.Errorf("scene: %s: shape not built with NewShape", path)
	}
	if _, err := s.transform.Affine(); err != nil {
		return fmt.Errorf("scene: %s: %w", path, err)
	}

	c, ok := s.geometry.(Composite)
	if !ok {
		return nil
	}
	for i, child := range c.Children {
		childPath := fmt.Sprintf("%s/%d", path, i)
		if child == nil {
			return fmt.Errorf("scene: %s: nil child", childPath)
		}
		if err := validate(child, seen, childPath); err != nil {
			return err
		}
	}
	return nil
}

// Stats counts the shapes in a tree by geometry kind, plus triangles.
type Stats struct {
	Shapes    map[string]int
	Triangles int
}

// Count walks root and tallies its nodes.
func Count(root *Shape) Stats {
	st := Stats{Shapes: make(map[string]int)}
	root.Walk(func(s *Shape) bool {
		st.Shapes[s.geometry.Kind()]++
		if p, ok := s.geometry.(*Polygons); ok {
			st.Triangles += p.Len()
		}
		return true
	})
	return st
}
