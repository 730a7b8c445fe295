package model

// Team is a club that can be registered in any number of leagues.
type Team struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Manager   *string `json:"manager"`
	ManagerID *string `json:"manager_id"`
	Clan      *string `json:"clan"`
	Value     *string `json:"value"` // market value, e.g. "30,3M"
}

// TeamCreate is the payload for creating a team.
type TeamCreate struct {
	Name      string  `json:"name"`
	Manager   *string `json:"manager,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
	Clan      *string `json:"clan,omitempty"`
	Value     *string `json:"value,omitempty"`
}

func (t TeamCreate) Validate() error {
	if blank(t.Name) {
		return invalid("name", "is required")
	}
	return nil
}

// TeamUpdate is a partial update; nil fields are left untouched.
type TeamUpdate struct {
	Name      *string `json:"name,omitempty"`
	Manager   *string `json:"manager,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
	Clan      *string `json:"clan,omitempty"`
	Value     *string `json:"value,omitempty"`
}

func (t TeamUpdate) Validate() error {
	if t.Name != nil && blank(*t.Name) {
		return invalid("name", "must not be empty")
	}
	return nil
}

// Empty reports whether the update changes nothing.
func (t TeamUpdate) Empty() bool {
	return t.Name == nil && t.Manager == nil && t.ManagerID == nil && t.Clan == nil && t.Value == nil
}

type TeamBatchCreate struct {
	Teams []TeamCreate `json:"teams"`
}

func (b TeamBatchCreate) Validate() error {
	if len(b.Teams) == 0 {
		return invalid("teams", "must contain at least one team")
	}
	seen := make(map[string]bool, len(b.Teams))
	for i, t := range b.Teams {
		if err := t.Validate(); err != nil {
			return invalid("teams", "item %d: %v", i, err)
		}
		if seen[t.Name] {
			return invalid("teams", "duplicate name %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

type TeamBatchUpdate struct {
	TeamIDs []int      `json:"team_ids"`
	Data    TeamUpdate `json:"data"`
}

func (b TeamBatchUpdate) Validate() error {
	if len(b.TeamIDs) == 0 {
		return invalid("team_ids", "must not be empty")
	}
	// A shared name would collide on the second row.
	if b.Data.Name != nil && len(b.TeamIDs) > 1 {
		return invalid("data.name", "cannot be applied to more than one team")
	}
	return b.Data.Validate()
}

// TeamRef is the short team shape embedded in other responses.
type TeamRef struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Manager   *string `json:"manager,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
	Value     *string `json:"value,omitempty"`
}

// Ref converts the team into its short form.
func (t Team) Ref() *TeamRef {
	return &TeamRef{ID: t.ID, Name: t.Name, Manager: t.Manager, ManagerID: t.ManagerID, Value: t.Value}
}
