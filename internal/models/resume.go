package models

// UploadedResume is one entry of the file-hosting resume catalog, as proxied
// by the backend. The hosting service owns these records; the client only
// lists and references them. Company/title/folder are denormalized hints
// used for grouping and search in the picker and may be empty.
type UploadedResume struct {
	PublicID      string `json:"public_id"`
	SecureURL     string `json:"secure_url"`
	Filename      string `json:"filename"`
	CreatedAt     string `json:"created_at"`
	CompanyName   string `json:"company_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
	CompanyFolder string `json:"company_folder,omitempty"`
}

// GroupKey is the bucket an entry lands in when the picker groups the
// catalog: the company folder when present, else the company name, else a
// literal "Other".
func (r UploadedResume) GroupKey() string {
	if r.CompanyFolder != "" {
		return r.CompanyFolder
	}
	if r.CompanyName != "" {
		return r.CompanyName
	}
	return "Other"
}
