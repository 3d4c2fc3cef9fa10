package syncer

import "github.com/directdev/portal/internal/models"

// Flow selects which sequence of calls a sync invocation runs. It is a
// closed set: Init, Common and Resources are the only implementations.
type Flow interface {
	flow()
}

// Init bootstraps a fresh installation: token acquisition, sign-in and one
// initialization call. No fetch or merge.
type Init struct{}

// Common is the full cycle: authenticate, discover the current term, fan out
// the record fetches, merge the journal and replace the local store.
type Common struct{}

// Resources fetches the downloadable resources of the given courses.
type Resources struct {
	Courses []*models.Course
}

func (Init) flow()      {}
func (Common) flow()    {}
func (Resources) flow() {}
