package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dentinhoapp/dentinho/internal/client/models"
	"github.com/dentinhoapp/dentinho/internal/client/storage"
	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/logging"
)

// Alarms maintains the reminder list stored under the single "alarmes" key.
// The whole list is decoded and re-encoded on every mutation; there are no
// partial updates. The list is shared by every account on the device, which
// mirrors the data this app inherits (see DESIGN.md).
//
// No OS-level alarm is scheduled; this manages reminder records only.
type Alarms struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

// NewAlarms constructs an alarm manager over the given store.
func NewAlarms(store storage.Store, log logging.Logger) *Alarms {
	return &Alarms{store: store, log: log, now: time.Now}
}

// List loads and decodes the full alarm list. An absent key yields an empty
// list; a corrupt value is logged and also yields an empty list, so a bad
// write can never wedge the alarm screen.
func (m *Alarms) List(ctx context.Context) ([]models.AlarmRecord, error) {
	value, found, err := m.store.Get(ctx, models.KeyAlarms)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.AlarmRecord{}, nil
	}

	alarms, err := models.DecodeAlarms(value)
	if err != nil {
		if errors.Is(err, common.ErrCorruptRecord) {
			m.log.Warn(ctx, "corrupt alarm list treated as empty", "key", models.KeyAlarms)
			return []models.AlarmRecord{}, nil
		}
		return nil, err
	}
	return alarms, nil
}

func (m *Alarms) save(ctx context.Context, alarms []models.AlarmRecord) error {
	value, err := models.EncodeAlarms(alarms)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, models.KeyAlarms, value)
}

// Create appends a new alarm for dateTime and persists the list. The id is
// the creation timestamp in milliseconds; two creations within the same
// millisecond would collide, an accepted limitation of the id scheme.
func (m *Alarms) Create(ctx context.Context, dateTime time.Time) (*models.AlarmRecord, error) {
	alarms, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	alarm := models.AlarmRecord{
		ID:      strconv.FormatInt(m.now().UnixMilli(), 10),
		Horario: models.FormatSchedule(dateTime),
	}

	if err := m.save(ctx, append(alarms, alarm)); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "alarm created", "id", alarm.ID, "horario", alarm.Horario)
	return &alarm, nil
}

// Update replaces the schedule of the alarm with the given id, keeping its
// position and id. Returns common.ErrNotFound when no record matches.
func (m *Alarms) Update(ctx context.Context, id string, dateTime time.Time) error {
	alarms, err := m.List(ctx)
	if err != nil {
		return err
	}

	for i := range alarms {
		if alarms[i].ID == id {
			alarms[i].Horario = models.FormatSchedule(dateTime)
			return m.save(ctx, alarms)
		}
	}
	return common.ErrNotFound
}

// Remove filters the alarm with the given id out of the list. Removing an
// id that is not there is a no-op. Confirmation happens at the screen layer.
func (m *Alarms) Remove(ctx context.Context, id string) error {
	alarms, err := m.List(ctx)
	if err != nil {
		return err
	}

	remaining := alarms[:0]
	for _, a := range alarms {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	return m.save(ctx, remaining)
}
