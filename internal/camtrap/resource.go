package camtrap

import (
	"io"

	"github.com/camtraplabs/camtrapdp/internal/schema"
	"github.com/camtraplabs/camtrapdp/internal/table"
)

// recordSet is the behavior shared by Deployments, MediaSet and Observations.
type recordSet interface {
	Len() int
	Write(w io.Writer) error
	Table() *table.Table
}

// Resource gives name-keyed access to one record kind, for callers (such as
// the HTTP layer) that select a kind at runtime instead of at compile time.
type Resource struct {
	Name   string
	Schema schema.Schema

	read func(io.Reader) (recordSet, error)
}

var resources = []Resource{
	{
		Name:   schema.Deployments.Resource,
		Schema: schema.Deployments,
		read:   func(r io.Reader) (recordSet, error) { return ReadDeployments(r) },
	},
	{
		Name:   schema.Media.Resource,
		Schema: schema.Media,
		read:   func(r io.Reader) (recordSet, error) { return ReadMedia(r) },
	},
	{
		Name:   schema.Observations.Resource,
		Schema: schema.Observations,
		read:   func(r io.Reader) (recordSet, error) { return ReadObservations(r) },
	},
}

// Resources returns all record kinds in canonical package order.
func Resources() []Resource {
	return append([]Resource(nil), resources...)
}

// Lookup returns the resource with the given name.
func Lookup(name string) (Resource, bool) {
	for _, res := range resources {
		if res.Name == name {
			return res, true
		}
	}
	return Resource{}, false
}

// Normalize reads records from r and writes their canonical serialization to
// w: declared column order, lowercase booleans, shortest-form numbers. The
// input must parse completely; nothing is written on error.
func (res Resource) Normalize(r io.Reader, w io.Writer) error {
	set, err := res.read(r)
	if err != nil {
		return err
	}
	return set.Write(w)
}

// Count reads records from r and returns how many there are.
func (res Resource) Count(r io.Reader) (int, error) {
	set, err := res.read(r)
	if err != nil {
		return 0, err
	}
	return set.Len(), nil
}
