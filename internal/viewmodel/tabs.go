// Package viewmodel builds the detail pages for members and events. Each build
// starts from the default tab and loads only what the active tab shows.
package viewmodel

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is returned for a tab name the page does not have
var ErrUnknownTab = errors.New("unknown tab")

// Tab names a content block on a detail page
type Tab string

const (
	TabAbout    Tab = "about"
	TabPhotos   Tab = "photos"
	TabMemories Tab = "memories"
	TabDetails  Tab = "details"
)

// MemberTabs are the tabs on a member profile, default first
var MemberTabs = []Tab{TabAbout, TabPhotos, TabMemories}

// EventTabs are the tabs on an event page, default first
var EventTabs = []Tab{TabDetails, TabPhotos}

// TabState is the selected tab of one page instance
type TabState struct {
	tabs   []Tab
	active Tab
}

// NewTabState starts at the first tab
func NewTabState(tabs []Tab) *TabState {
	return &TabState{tabs: tabs, active: tabs[0]}
}

// Active returns the selected tab
func (s *TabState) Active() Tab {
	return s.active
}

// Select switches tabs. An empty name selects the default.
func (s *TabState) Select(name string) error {
	if name == "" {
		s.active = s.tabs[0]
		return nil
	}
	for _, t := range s.tabs {
		if string(t) == name {
			s.active = t
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, name)
}

// Tabs returns the available tabs
func (s *TabState) Tabs() []Tab {
	return append([]Tab(nil), s.tabs...)
}
