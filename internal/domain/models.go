package domain

import "encoding/json"

// ContactCard is the canonical structured result of a single extraction call.
// It is created fresh per call and never persisted by this subsystem.
type ContactCard struct {
	CompanyName        string
	ContactPerson      string
	Designation        string
	Email              string
	Mobile             string
	Website            string
	Address            string
	InterestedProducts []string
	Remarks            string
	Extras             map[string]string
}

// NewContactCard returns an empty card with non-nil collections so JSON
// output carries [] and {} instead of null.
func NewContactCard() *ContactCard {
	return &ContactCard{
		InterestedProducts: []string{},
		Extras:             map[string]string{},
	}
}

// cardJSON is the wire shape. The legacy keys company, name and phone mirror
// companyName, contactPerson and mobile; older consumers read the short keys.
type cardJSON struct {
	CompanyName        string            `json:"companyName"`
	Company            string            `json:"company"`
	ContactPerson      string            `json:"contactPerson"`
	Name               string            `json:"name"`
	Designation        string            `json:"designation"`
	Email              string            `json:"email"`
	Mobile             string            `json:"mobile"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	Address            string            `json:"address"`
	InterestedProducts []string          `json:"interestedProducts"`
	Remarks            string            `json:"remarks"`
	Extras             map[string]string `json:"extras"`
}

func (c ContactCard) MarshalJSON() ([]byte, error) {
	products := c.InterestedProducts
	if products == nil {
		products = []string{}
	}
	extras := c.Extras
	if extras == nil {
		extras = map[string]string{}
	}
	return json.Marshal(cardJSON{
		CompanyName:        c.CompanyName,
		Company:            c.CompanyName,
		ContactPerson:      c.ContactPerson,
		Name:               c.ContactPerson,
		Designation:        c.Designation,
		Email:              c.Email,
		Mobile:             c.Mobile,
		Phone:              c.Mobile,
		Website:            c.Website,
		Address:            c.Address,
		InterestedProducts: products,
		Remarks:            c.Remarks,
		Extras:             extras,
	})
}

// UnmarshalJSON accepts either the canonical or the legacy alias keys, the
// canonical key winning when both are present. Model output goes through this
// to normalize company/companyName style variation.
func (c *ContactCard) UnmarshalJSON(data []byte) error {
	var w cardJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.CompanyName = firstNonEmpty(w.CompanyName, w.Company)
	c.ContactPerson = firstNonEmpty(w.ContactPerson, w.Name)
	c.Designation = w.Designation
	c.Email = w.Email
	c.Mobile = firstNonEmpty(w.Mobile, w.Phone)
	c.Website = w.Website
	c.Address = w.Address
	c.InterestedProducts = w.InterestedProducts
	if c.InterestedProducts == nil {
		c.InterestedProducts = []string{}
	}
	c.Remarks = w.Remarks
	c.Extras = w.Extras
	if c.Extras == nil {
		c.Extras = map[string]string{}
	}
	return nil
}

// NeedsFallback reports whether any of the fields the fallback augmenter is
// allowed to fill is still empty.
func (c *ContactCard) NeedsFallback() bool {
	return c.CompanyName == "" || c.ContactPerson == "" || c.Email == "" ||
		c.Mobile == "" || c.Address == ""
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
