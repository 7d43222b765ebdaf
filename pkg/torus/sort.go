package torus

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/philipparndt/torusview/pkg/geometry"
)

// ErrUnknownSortOrder is returned for a sort order outside the six defined values
var ErrUnknownSortOrder = errors.New("unknown sort order")

// SortOrder selects the centroid axis and direction used to order facets
type SortOrder int

const (
	ZAscending SortOrder = iota
	ZDescending
	YAscending
	YDescending
	XAscending
	XDescending
)

var sortOrderNames = map[SortOrder]string{
	ZAscending:  "z_ascending",
	ZDescending: "z_descending",
	YAscending:  "y_ascending",
	YDescending: "y_descending",
	XAscending:  "x_ascending",
	XDescending: "x_descending",
}

func (o SortOrder) String() string {
	if name, ok := sortOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// ParseSortOrder parses names such as "z_ascending"
func ParseSortOrder(s string) (SortOrder, error) {
	for o, name := range sortOrderNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
}

// keys returns the leading axis, the two tie-break axes and whether the
// leading axis is descending
func (o SortOrder) keys() (axes [3]geometry.Axis, descending bool, err error) {
	switch o {
	case XAscending, XDescending:
		axes = [3]geometry.Axis{geometry.AxisX, geometry.AxisY, geometry.AxisZ}
	case YAscending, YDescending:
		axes = [3]geometry.Axis{geometry.AxisY, geometry.AxisZ, geometry.AxisX}
	case ZAscending, ZDescending:
		axes = [3]geometry.Axis{geometry.AxisZ, geometry.AxisX, geometry.AxisY}
	default:
		return axes, false, fmt.Errorf("%w: %d", ErrUnknownSortOrder, int(o))
	}
	descending = o == XDescending || o == YDescending || o == ZDescending
	return axes, descending, nil
}

// SortFacets orders facets in place by centroid. Only the leading axis is
// reversed for descending orders; tie-breaks are always ascending. The sort
// is stable.
func SortFacets(facets []Facet, order SortOrder) error {
	axes, descending, err := order.keys()
	if err != nil {
		return err
	}

	slices.SortStableFunc(facets, func(a, b Facet) int {
		c := cmp.Compare(a.Center.Axis(axes[0]), b.Center.Axis(axes[0]))
		if descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		if c = cmp.Compare(a.Center.Axis(axes[1]), b.Center.Axis(axes[1])); c != 0 {
			return c
		}
		return cmp.Compare(a.Center.Axis(axes[2]), b.Center.Axis(axes[2]))
	})
	return nil
}

// Sorted returns a copy of the mesh with its facets ordered
func (m *Mesh) Sorted(order SortOrder) (*Mesh, error) {
	out := m.Copy()
	if err := SortFacets(out.Facets, order); err != nil {
		return nil, err
	}
	return out, nil
}
