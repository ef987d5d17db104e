package mcp

import (
	"github.com/jonathan/smartjob/internal/types"
)

// JobArg is a job posting as tools receive and return it.
type JobArg struct {
	ID             string   `json:"id" jsonschema:"Job identifier"`
	Title          string   `json:"title" jsonschema:"Job title"`
	Company        string   `json:"company,omitempty" jsonschema:"Hiring company"`
	Type           string   `json:"type,omitempty" jsonschema:"Employment type, e.g. Internship or Full-time"`
	Location       string   `json:"location,omitempty" jsonschema:"Job location"`
	RequiredSkills []string `json:"requiredSkills,omitempty" jsonschema:"Skills the job requires"`
	Description    string   `json:"description,omitempty" jsonschema:"Free-text job description"`
	Status         string   `json:"status,omitempty" jsonschema:"Moderation status: approved, pending or rejected"`
}

// ApplicantArg is an applicant's profile as tools receive and return it.
type ApplicantArg struct {
	ID           string   `json:"id" jsonschema:"Student identifier"`
	Name         string   `json:"name,omitempty" jsonschema:"Student name"`
	Email        string   `json:"email,omitempty" jsonschema:"Student email"`
	ResumeURL    string   `json:"resumeUrl,omitempty" jsonschema:"Link to the resume"`
	PortfolioURL string   `json:"portfolioUrl,omitempty" jsonschema:"Link to the portfolio"`
	Skills       []string `json:"skills" jsonschema:"Profile skills"`
}

func (j JobArg) posting() types.JobPosting {
	return types.JobPosting{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Type:           j.Type,
		Location:       j.Location,
		RequiredSkills: j.RequiredSkills,
		Description:    j.Description,
		Status:         types.JobStatus(j.Status),
	}
}

func jobArg(j types.JobPosting) JobArg {
	return JobArg{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Type:           j.Type,
		Location:       j.Location,
		RequiredSkills: nonNil(j.RequiredSkills),
		Description:    j.Description,
		Status:         string(j.Status),
	}
}

func postings(args []JobArg) []types.JobPosting {
	out := make([]types.JobPosting, len(args))
	for i, a := range args {
		out[i] = a.posting()
	}
	return out
}

func (a ApplicantArg) applicant() types.Applicant {
	return types.Applicant{
		Student: types.User{
			ID:           a.ID,
			Role:         types.RoleStudent,
			Name:         a.Name,
			Email:        a.Email,
			ResumeURL:    a.ResumeURL,
			PortfolioURL: a.PortfolioURL,
			Skills:       a.Skills,
		},
	}
}

func applicantArg(a types.Applicant) ApplicantArg {
	s := a.Student
	return ApplicantArg{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		ResumeURL:    s.ResumeURL,
		PortfolioURL: s.PortfolioURL,
		Skills:       nonNil(s.Skills),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
