package service

import (
	"time"

	"absence-calendar-bot/internal/calendar"
	"absence-calendar-bot/pkg/week"

	"github.com/sirupsen/logrus"
)

// CalendarService строит недельный календарь отсутствий
type CalendarService struct {
	absences *AbsenceService
	daysOff  *NonWorkingDayService // может быть nil
	location *time.Location
	now      func() time.Time
	logger   *logrus.Logger
}

func NewCalendarService(
	absences *AbsenceService,
	daysOff *NonWorkingDayService,
	location *time.Location,
	logger *logrus.Logger,
) *CalendarService {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CalendarService{
		absences: absences,
		daysOff:  daysOff,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Location - часовой пояс календаря
func (s *CalendarService) Location() *time.Location {
	return s.location
}

// Today - текущая дата в часовом поясе календаря
func (s *CalendarService) Today() time.Time {
	return week.StartOfDay(s.now().In(s.location))
}

// CurrentWeek строит календарь текущей недели
func (s *CalendarService) CurrentWeek() (calendar.WeekView, error) {
	return s.Week(s.now())
}

// Week строит календарь недели, содержащей ref
func (s *CalendarService) Week(ref time.Time) (calendar.WeekView, error) {
	w := week.Compute(ref.In(s.location))

	grouping, err := s.absences.Grouped()
	if err != nil {
		return calendar.WeekView{}, err
	}

	daysOff := map[string]bool{}
	if s.daysOff != nil {
		daysOff, err = s.daysOff.DaysOffBetween(week.FormatDate(w.Start()), week.FormatDate(w.End()))
		if err != nil {
			s.logger.WithError(err).Warn("Failed to load non-working days")
			daysOff = map[string]bool{}
		}
	}

	view := calendar.BuildGrid(w, grouping, daysOff)

	s.logger.WithFields(logrus.Fields{
		"week":   w.WeekNumber,
		"start":  week.FormatDate(w.Start()),
		"people": len(view.Rows),
		"absent": view.AbsentCount(),
	}).Debug("Week view built")

	return view, nil
}
