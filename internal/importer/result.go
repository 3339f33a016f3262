package importer

import "fmt"

// Result summarizes one imported file.
type Result struct {
	Entity   string `json:"entity"`
	File     string `json:"file"`
	Read     int    `json:"read"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Dropped  int    `json:"dropped"`
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: read=%d inserted=%d updated=%d dropped=%d",
		r.Entity, r.Read, r.Inserted, r.Updated, r.Dropped)
}
