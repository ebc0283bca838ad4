package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dentinhoapp/dentinho/internal/client/models"
	"github.com/dentinhoapp/dentinho/internal/common"
)

// nowFn is a test seam for the device clock fallback.
var nowFn = time.Now

// currentTime asks the time service for the configured zone and falls back
// to the device clock when the service is unreachable.
func (a *App) currentTime(ctx context.Context) string {
	t, err := a.timeapi.Current(ctx, a.config.TimeZone)
	if err != nil {
		a.log.Warn(ctx, "time service unavailable, using device clock", "error", err)
		now := nowFn()
		return fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Alarms lists the scheduled brushing alarms.
func (a *App) Alarms(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}

	alarms, err := a.alarms.List(ctx)
	if err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}

	a.printf("Current time: %s", a.currentTime(ctx))

	if len(alarms) == 0 {
		a.printf("No alarms scheduled.")
		return nil
	}

	for i, alarm := range alarms {
		a.printf("  %d. %s (id %s)", i+1, alarm.Horario, alarm.ID)
	}
	return nil
}

// SetAlarm schedules a new brushing alarm.
func (a *App) SetAlarm(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}

	a.printf("Current time: %s", a.currentTime(ctx))

	input, err := GetSimpleText(a.reader, "Alarm time (dd/mm/yyyy às hh:mm)", a.out)
	if err != nil {
		return err
	}
	when, err := models.ParseSchedule(input)
	if err != nil {
		a.printf("Time must look like 09/05/2025 às 22:07.")
		return nil
	}

	alarm, err := a.alarms.Create(ctx, when)
	if err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}

	a.printf("Alarm set for %s (id %s).", alarm.Horario, alarm.ID)
	return nil
}

// EditAlarm changes the time of an existing alarm.
func (a *App) EditAlarm(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}

	id, err := GetSimpleText(a.reader, "Alarm id", a.out)
	if err != nil {
		return err
	}

	input, err := GetSimpleText(a.reader, "New time (dd/mm/yyyy às hh:mm)", a.out)
	if err != nil {
		return err
	}
	when, err := models.ParseSchedule(input)
	if err != nil {
		a.printf("Time must look like 09/05/2025 às 22:07.")
		return nil
	}

	if err := a.alarms.Update(ctx, id, when); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.printf("No alarm with id %s.", id)
			return nil
		}
		a.printf("%s", errorMessage(err))
		return err
	}

	a.printf("Alarm %s updated.", id)
	return nil
}

// RemoveAlarm deletes an alarm after confirmation. Removing an id that no
// longer exists is not an error.
func (a *App) RemoveAlarm(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}

	id, err := GetSimpleText(a.reader, "Alarm id", a.out)
	if err != nil {
		return err
	}

	if !a.confirm.Confirm("Remove alarm " + id + "?") {
		return nil
	}

	if err := a.alarms.Remove(ctx, id); err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}

	a.printf("Alarm removed.")
	return nil
}
