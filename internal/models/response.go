package models

import "time"

// Response shapes returned by the handlers. Associations are flattened to
// id+name summaries so clients never receive full related entities.

type CompanySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RoleSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type JobSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Age       int             `json:"age"`
	Gender    Gender          `json:"gender"`
	Address   string          `json:"address"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Company   *CompanySummary `json:"company,omitempty"`
	Role      *RoleSummary    `json:"role,omitempty"`
}

type UserCreateResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Age       int             `json:"age"`
	Gender    Gender          `json:"gender"`
	Address   string          `json:"address"`
	CreatedAt time.Time       `json:"createdAt"`
	Company   *CompanySummary `json:"company,omitempty"`
}

type UserUpdateResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Age       int             `json:"age"`
	Gender    Gender          `json:"gender"`
	Address   string          `json:"address"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Company   *CompanySummary `json:"company,omitempty"`
}

type JobCreateResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Salary    float64    `json:"salary"`
	Quantity  int        `json:"quantity"`
	Level     JobLevel   `json:"level"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Active    bool       `json:"active"`
	Skills    []string   `json:"skills"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
}

type JobUpdateResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Salary    float64    `json:"salary"`
	Quantity  int        `json:"quantity"`
	Level     JobLevel   `json:"level"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Active    bool       `json:"active"`
	Skills    []string   `json:"skills"`
	UpdatedAt time.Time  `json:"updatedAt"`
	UpdatedBy string     `json:"updatedBy"`
}

type JobResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Salary      float64         `json:"salary"`
	Quantity    int             `json:"quantity"`
	Level       JobLevel        `json:"level"`
	Description string          `json:"description"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Active      bool            `json:"active"`
	Skills      []string        `json:"skills"`
	Company     *CompanySummary `json:"company,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ResumeCreateResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

type ResumeUpdateResponse struct {
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

type ResumeResponse struct {
	ID          int64        `json:"id"`
	Email       string       `json:"email"`
	URL         string       `json:"url"`
	Status      ResumeStatus `json:"status"`
	CompanyName string       `json:"companyName"`
	User        UserSummary  `json:"user"`
	Job         JobSummary   `json:"job"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	CreatedBy   string       `json:"createdBy"`
	UpdatedBy   string       `json:"updatedBy"`
}

type FileUploadResponse struct {
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}
