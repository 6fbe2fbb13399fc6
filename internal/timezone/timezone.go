package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "America/Lima"

var current atomic.Value

func init() {
	current.Store(DefaultTimezone)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// SetDefault troca o fuso da aplicação (APP_TIMEZONE). Valores inválidos são ignorados.
func SetDefault(tz string) bool {
	if !IsValid(tz) {
		return false
	}
	current.Store(tz)
	return true
}

func Name() string {
	return current.Load().(string)
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(Name())
	if err != nil {
		return time.UTC
	}
	return loc
}

func Default() *time.Location {
	return Location(Name())
}

func Now() time.Time {
	return time.Now().In(Default())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today é a meia-noite de hoje no fuso da aplicação.
func Today(now time.Time) time.Time {
	now = now.In(Default())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
