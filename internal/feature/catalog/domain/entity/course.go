package entity

// Course belongs to one category and one teacher (a user) and owns its videos.
type Course struct {
	ID          uint
	Title       string
	Description string
	TeacherID   uint
	CategoryID  uint
}

// CoursePatch holds the fields of a partial update; nil means untouched.
type CoursePatch struct {
	Title       *string
	Description *string
	TeacherID   *uint
	CategoryID  *uint
}

// IsEmpty reports whether the patch changes nothing.
func (p CoursePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.TeacherID == nil && p.CategoryID == nil
}

// CourseSummary is a course row joined with its category name.
type CourseSummary struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// CourseDetails is a read-time join of a course, its teacher's username,
// its category name and all of its videos.
type CourseDetails struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Teacher     string  `json:"teacher"`
	Category    string  `json:"category"`
	Videos      []Video `json:"videos"`
}
