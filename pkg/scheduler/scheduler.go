// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/tejzpr/munin-mcp/internal/config"
	"github.com/tejzpr/munin-mcp/internal/engine"
)

// Scheduler files the daily briefing and the weekly review at their
// configured hours.
type Scheduler struct {
	engine   *engine.Engine
	cfg      config.BriefingConfig
	location *time.Location
	stopChan chan bool

	lastDaily  string
	lastWeekly string
}

// NewScheduler creates a new scheduler. An unknown timezone falls back
// to the local one.
func NewScheduler(eng *engine.Engine, cfg config.BriefingConfig) *Scheduler {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, using local time: %v", cfg.Timezone, err)
		loc = time.Local
	}
	return &Scheduler{
		engine:   eng,
		cfg:      cfg,
		location: loc,
		stopChan: make(chan bool),
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() {
	ticker := time.NewTicker(time.Minute)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.tick(time.Now().In(s.location))
			case <-s.stopChan:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.stopChan <- true
}

// tick fires each due briefing at most once per day, keyed by date so
// a fire is not repeated within its hour.
func (s *Scheduler) tick(now time.Time) {
	date := now.Format("2006-01-02")

	if now.Hour() == s.cfg.MorningHour && s.lastDaily != date {
		s.lastDaily = date
		if _, err := s.engine.FileBriefing(context.Background(), false); err != nil {
			log.Printf("Failed to file daily briefing: %v", err)
		}
	}

	if now.Weekday() == time.Weekday(s.cfg.WeeklyWeekday) &&
		now.Hour() == s.cfg.WeeklyHour && s.lastWeekly != date {
		s.lastWeekly = date
		if _, err := s.engine.FileBriefing(context.Background(), true); err != nil {
			log.Printf("Failed to file weekly review: %v", err)
		}
	}
}
