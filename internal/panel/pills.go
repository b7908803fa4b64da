package panel

import "fmt"

// Pill is the avatar chip rendered for a team member.
type Pill struct {
	Type             string
	Label            string
	Name             string
	FallbackIconName string
	Variant          string
	AlternativeText  string
	Src              string
}

// Pills maps the cached roster to avatar pills. The pill name is the member
// id so a removal request can be routed back.
func (p *Panel) Pills() []Pill {
	members := p.TeamMembers()

	pills := make([]Pill, 0, len(members))
	for _, m := range members {
		pills = append(pills, Pill{
			Type:             "avatar",
			Label:            fmt.Sprintf("%s (%s)", m.User.Name, m.TeamMemberRole),
			Name:             m.ID,
			FallbackIconName: "standard:user",
			Variant:          "circle",
			AlternativeText:  "User avatar",
			Src:              m.User.SmallPhotoURL,
		})
	}
	return pills
}
