package domain

import "encoding/json"

// ProjectRef is the minimal identity of a known project, used to link an
// ingested asset to an existing project by name.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts both "id" and the document-store style "_id".
func (p *ProjectRef) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string `json:"id"`
		DocID string `json:"_id"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	if p.ID == "" {
		p.ID = raw.DocID
	}
	p.Name = raw.Name
	return nil
}
