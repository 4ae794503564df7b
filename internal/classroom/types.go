package classroom

import "fmt"

// Course is an enrollment unit the student belongs to.
type Course struct {
	ID   string
	Name string
}

// DueDate is a calendar date with no time component.
type DueDate struct {
	Day   int64
	Month int64
	Year  int64
}

// String renders the date as day/month/year.
func (d DueDate) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// DriveFileRef identifies a Drive file attached to an assignment.
type DriveFileRef struct {
	ID    string
	Title string
}

// Link is a plain hyperlink attached to an assignment.
type Link struct {
	URL   string
	Title string
}

// Material is a resource attached to an assignment. Exactly one of
// DriveFile or Link is set; any other vendor material variant is
// dropped during conversion.
type Material struct {
	DriveFile *DriveFileRef
	Link      *Link
}

// CourseWork is an assignment posted within a course.
type CourseWork struct {
	ID          string
	Title       string
	Description string
	DueDate     *DueDate
	Materials   []Material
}
