package models

// BookedSlots maps groundId -> "YYYY-MM-DD" -> slot identifiers in store
// order. It is a read-time projection rebuilt from the bookings collection
// on every request, never persisted.
type BookedSlots map[string]map[string][]string

// Add appends a slot under [groundID][day], creating intermediate levels on
// first use.
func (s BookedSlots) Add(groundID, day, slot string) {
	if s[groundID] == nil {
		s[groundID] = map[string][]string{}
	}
	s[groundID][day] = append(s[groundID][day], slot)
}
