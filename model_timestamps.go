package clubsetup

import "time"

// Touchable records carry an updatedAt stamp refreshed on every write.
type Touchable interface {
	Touch(now time.Time)
}

func (c *Club) Touch(now time.Time) { c.UpdatedAt = now }
func (l *LocationContact) Touch(now time.Time) { l.UpdatedAt = now }
func (w *WorkingHoursCalendar) Touch(now time.Time) { w.UpdatedAt = now }
func (r *Resource) Touch(now time.Time) { r.UpdatedAt = now }
func (a *Amenity) Touch(now time.Time) { a.UpdatedAt = now }
func (c *Coach) Touch(now time.Time) { c.UpdatedAt = now }
func (c *CoachClass) Touch(now time.Time) { c.UpdatedAt = now }
func (m *Membership) Touch(now time.Time) { m.UpdatedAt = now }
func (p *Pricing) Touch(now time.Time) { p.UpdatedAt = now }
func (p *PromoCode) Touch(now time.Time) { p.UpdatedAt = now }
func (u *UserGroup) Touch(now time.Time) { u.UpdatedAt = now }
func (t *TeamMember) Touch(now time.Time) { t.UpdatedAt = now }
func (e *Extras) Touch(now time.Time) { e.UpdatedAt = now }
