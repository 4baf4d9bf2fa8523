// Package events lists solar flare events from a catalog.
//
// A Catalog returns the events in a TimeRange; List narrows them to a
// minimum GOES class and orders them by start time. FileCatalog reads a YAML
// list of events, e.g.
//
//	- event_date: "2011-06-07"
//	  location: [54, -21]
//	  start_time: "2011-06-07T06:16:00Z"
//	  peak_time: "2011-06-07T06:41:00Z"
//	  end_time: "2011-06-07T06:59:00Z"
//	  class: M2.5
//	  active_region: 11226
//
// Class parses and compares GOES flare classes (A, B, C, M, X).
package events
