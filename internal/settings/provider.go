// Package settings owns the work-zone and reporting-interval configuration.
// Readers always see one consistent snapshot: a mode switch can never mix a
// circle's radius with a rectangle's corners.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/davomat/attendance-backend-go/internal/models"
)

// Settings keys in the persistent key/value store
const (
	keyOfficeLocation = "office_location"
	keyOfficeArea     = "office_area"
	keyUseAreaMode    = "use_area_mode"
	keyInterval       = "location_interval"
)

// Validation errors returned at the settings-write boundary
var (
	ErrIntervalOutOfRange = errors.New("settings: interval must be between 5 and 120 minutes")
	ErrNegativeGrace      = errors.New("settings: grace period must not be negative")
	ErrNonPositiveRadius  = errors.New("settings: radius must be positive")
)

// Store is the persistence contract the provider works against. Get returns
// an empty string for a missing key.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Snapshot is one consistent view of the zone and interval configuration
type Snapshot struct {
	Zone     models.WorkZone
	Interval models.IntervalPolicy
}

// Provider serves atomic snapshot reads of the current settings and writes
// updates through to the store. Writers are serialized; readers are
// lock-free against the latest committed snapshot.
type Provider struct {
	store   Store
	writeMu sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewProvider loads the persisted settings, falling back to defaults for
// any missing key
func NewProvider(store Store) (*Provider, error) {
	p := &Provider{store: store}

	snap, err := p.load()
	if err != nil {
		return nil, err
	}
	p.current.Store(snap)

	return p, nil
}

// CurrentZone returns the active work zone
func (p *Provider) CurrentZone() models.WorkZone {
	return p.current.Load().Zone
}

// CurrentIntervalPolicy returns the active reporting interval policy
func (p *Provider) CurrentIntervalPolicy() models.IntervalPolicy {
	return p.current.Load().Interval
}

// SetCircle stores a circular office zone and switches to circle mode
func (p *Provider) SetCircle(c models.CircleZone) error {
	if c.Radius <= 0 {
		return ErrNonPositiveRadius
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if err := p.setJSON(keyOfficeLocation, c); err != nil {
		return err
	}
	if err := p.setJSON(keyUseAreaMode, false); err != nil {
		return err
	}

	snap := *p.current.Load()
	snap.Zone = models.WorkZone{Mode: models.ZoneModeCircle, Circle: &c}
	p.current.Store(&snap)
	return nil
}

// SetArea stores a rectangular office zone and switches to area mode
func (p *Provider) SetArea(a models.AreaZone) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if err := p.setJSON(keyOfficeArea, a); err != nil {
		return err
	}
	if err := p.setJSON(keyUseAreaMode, true); err != nil {
		return err
	}

	snap := *p.current.Load()
	snap.Zone = models.WorkZone{Mode: models.ZoneModeArea, Area: &a}
	p.current.Store(&snap)
	return nil
}

// SetInterval stores a new reporting interval policy
func (p *Provider) SetInterval(iv models.IntervalPolicy) error {
	if iv.Minutes < 5 || iv.Minutes > 120 {
		return ErrIntervalOutOfRange
	}
	if iv.GracePeriod < 0 {
		return ErrNegativeGrace
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if err := p.setJSON(keyInterval, iv); err != nil {
		return err
	}

	snap := *p.current.Load()
	snap.Interval = iv
	p.current.Store(&snap)
	return nil
}

func (p *Provider) load() (*Snapshot, error) {
	circle := models.CircleZone{Latitude: 41.2995, Longitude: 69.2401, Radius: 100}
	if err := p.getJSON(keyOfficeLocation, &circle); err != nil {
		return nil, err
	}

	area := models.AreaZone{
		Point1Lat: 41.2995, Point1Lng: 69.2401,
		Point2Lat: 41.3005, Point2Lng: 69.2411,
	}
	if err := p.getJSON(keyOfficeArea, &area); err != nil {
		return nil, err
	}

	useArea := false
	if err := p.getJSON(keyUseAreaMode, &useArea); err != nil {
		return nil, err
	}

	interval := models.IntervalPolicy{Minutes: 30, GracePeriod: 5}
	if err := p.getJSON(keyInterval, &interval); err != nil {
		return nil, err
	}

	zone := models.WorkZone{Mode: models.ZoneModeCircle, Circle: &circle}
	if useArea {
		zone = models.WorkZone{Mode: models.ZoneModeArea, Area: &area}
	}

	return &Snapshot{Zone: zone, Interval: interval}, nil
}

// getJSON decodes the stored value into dst, leaving dst untouched for a
// missing key
func (p *Provider) getJSON(key string, dst interface{}) error {
	raw, err := p.store.Get(key)
	if err != nil {
		return fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode setting %s: %w", key, err)
	}
	return nil
}

func (p *Provider) setJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}
	if err := p.store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}
