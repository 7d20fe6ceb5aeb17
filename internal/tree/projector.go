package tree

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/s21platform/family-web/internal/model"
)

type Loader func(ctx context.Context) ([]model.Member, error)

// Key names one projection. Viewer is the user the member list was loaded
// for: a forest is only ever served back to the viewer it was loaded for.
type Key struct {
	FamilyID string
	Version  int64
	Viewer   string
}

func (k Key) String() string {
	return fmt.Sprintf("%s\x00%d\x00%s", k.FamilyID, k.Version, k.Viewer)
}

type projection struct {
	forest *Forest
	err    error
}

// Projector memoizes forests by family, member-list version and viewer, so
// an unchanged list is assembled once per viewer.
type Projector struct {
	cache *ttlcache.Cache[Key, projection]
	group singleflight.Group
}

func NewProjector(ttl time.Duration, capacity uint64) *Projector {
	cache := ttlcache.New[Key, projection](
		ttlcache.WithTTL[Key, projection](ttl),
		ttlcache.WithCapacity[Key, projection](capacity),
	)
	go cache.Start()

	return &Projector{cache: cache}
}

func (p *Projector) Close() {
	p.cache.Stop()
}

// Project returns the forest for key, calling load only on a miss. Validation
// failures are memoized too: the same snapshot fails the same way.
func (p *Projector) Project(ctx context.Context, key Key, load Loader) (*Forest, bool, error) {
	if item := p.cache.Get(key); item != nil {
		v := item.Value()
		return v.forest, true, v.err
	}

	res, err, _ := p.group.Do(key.String(), func() (interface{}, error) {
		members, err := load(ctx)
		if err != nil {
			return nil, err
		}

		v := projection{}
		if err := Validate(members); err != nil {
			v.err = err
		} else {
			v.forest = Assemble(members)
		}
		p.cache.Set(key, v, ttlcache.DefaultTTL)
		return v, nil
	})
	if err != nil {
		return nil, false, err
	}

	v := res.(projection)
	return v.forest, false, v.err
}

// Invalidate drops the family's forests built from versions older than
// version, for every viewer.
func (p *Projector) Invalidate(familyID string, version int64) {
	for _, k := range p.cache.Keys() {
		if k.FamilyID == familyID && k.Version < version {
			p.cache.Delete(k)
		}
	}
}
