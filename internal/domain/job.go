package domain

type JobPosting struct {
	Title      string `json:"title" yaml:"title"`
	Company    string `json:"company" yaml:"company"`
	Location   string `json:"location" yaml:"location"`
	Source     string `json:"source" yaml:"source"` // indeed/rozee/remoteok/etc.
	PostedDate Date   `json:"posted_date" yaml:"posted_date"`
	ApplyURL   string `json:"apply_url" yaml:"apply_url"`
	RoleType   string `json:"role_type" yaml:"role_type"` // intern/trainee/junior/entry
}

// PostedOn reports whether the posting is dated d.
func (j JobPosting) PostedOn(d Date) bool {
	return j.PostedDate.Equal(d)
}
