package asesoria

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/mentor-scheduler/internal/models"
)

const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"
)

// NormalizeHora corta os segundos: "14:00:00" -> "14:00".
func NormalizeHora(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 5 {
		return h[:5]
	}
	return h
}

func HoraString(t datatypes.Time) string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

func FechaString(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// FreeSlots devolve os horários configurados que não estão ocupados,
// em ordem crescente. Nunca retorna nil.
func FreeSlots(configured []string, booked []models.Asesoria) []string {
	free := make([]string, 0, len(configured))
	if len(configured) == 0 {
		return free
	}

	taken := make(map[string]struct{}, len(booked))
	for _, a := range booked {
		taken[HoraString(a.Hora)] = struct{}{}
	}

	for _, slot := range configured {
		h := NormalizeHora(slot)
		if _, ok := taken[h]; ok {
			continue
		}
		free = append(free, h)
	}

	sort.Strings(free)
	return free
}
