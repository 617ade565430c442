package entity

// Video is a lesson of exactly one course. Its url is unique.
type Video struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Resume   string `json:"resume"`
	URL      string `json:"url"`
	CourseID uint   `json:"course_id"`
}

// VideoPatch holds the fields of a partial update; nil means untouched.
type VideoPatch struct {
	Title    *string
	Resume   *string
	URL      *string
	CourseID *uint
}

// IsEmpty reports whether the patch changes nothing.
func (p VideoPatch) IsEmpty() bool {
	return p.Title == nil && p.Resume == nil && p.URL == nil && p.CourseID == nil
}
