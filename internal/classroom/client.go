package classroom

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	classroom "google.golang.org/api/classroom/v1"
	"google.golang.org/api/option"

	"github.com/nattapongd/classmate/internal/logging"
)

// Client wraps the Google Classroom API service. It owns a one-shot
// cache of the course list: once a non-empty list has been fetched it
// is returned unchanged for the rest of the session, with no refresh
// path. Coursework is never cached.
type Client struct {
	svc     *classroom.Service
	logger  *slog.Logger
	courses []Course
}

// NewClient creates a Classroom client on top of an authenticated HTTP
// client.
func NewClient(ctx context.Context, httpClient *http.Client, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	options := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := classroom.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Classroom service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: logging.WithService(logger, "classroom"),
	}, nil
}

// ListActiveCourses returns the student's active courses. The first
// successful non-empty result is cached for the lifetime of the client.
func (c *Client) ListActiveCourses(ctx context.Context) ([]Course, error) {
	if len(c.courses) > 0 {
		return c.courses, nil
	}

	resp, err := c.svc.Courses.List().CourseStates("ACTIVE").Context(ctx).Do()
	if err != nil {
		c.logger.Warn("course listing failed", logging.Operation("list_courses"), logging.Err(err))
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]Course, 0, len(resp.Courses))
	for _, course := range resp.Courses {
		courses = append(courses, Course{ID: course.Id, Name: course.Name})
	}

	c.logger.Debug("course listing complete", logging.Operation("list_courses"), slog.Int("count", len(courses)))
	c.courses = courses
	return c.courses, nil
}

// ListCourseWork returns the coursework of a course, freshly fetched on
// every call.
func (c *Client) ListCourseWork(ctx context.Context, courseID string) ([]CourseWork, error) {
	resp, err := c.svc.Courses.CourseWork.List(courseID).Context(ctx).Do()
	if err != nil {
		c.logger.Warn("coursework listing failed", logging.Operation("list_coursework"), slog.String(logging.KeyCourse, courseID), logging.Err(err))
		return nil, fmt.Errorf("failed to list coursework: %w", err)
	}

	works := make([]CourseWork, 0, len(resp.CourseWork))
	for _, cw := range resp.CourseWork {
		works = append(works, toCourseWork(cw))
	}

	return works, nil
}

// toCourseWork converts a Classroom API CourseWork to our CourseWork
// type. Material variants other than Drive files and links are dropped.
func toCourseWork(cw *classroom.CourseWork) CourseWork {
	if cw == nil {
		return CourseWork{}
	}

	work := CourseWork{
		ID:          cw.Id,
		Title:       cw.Title,
		Description: cw.Description,
	}

	if cw.DueDate != nil {
		work.DueDate = &DueDate{
			Day:   cw.DueDate.Day,
			Month: cw.DueDate.Month,
			Year:  cw.DueDate.Year,
		}
	}

	for _, m := range cw.Materials {
		switch {
		case m.DriveFile != nil && m.DriveFile.DriveFile != nil:
			work.Materials = append(work.Materials, Material{
				DriveFile: &DriveFileRef{
					ID:    m.DriveFile.DriveFile.Id,
					Title: m.DriveFile.DriveFile.Title,
				},
			})
		case m.Link != nil:
			work.Materials = append(work.Materials, Material{
				Link: &Link{
					URL:   m.Link.Url,
					Title: m.Link.Title,
				},
			})
		}
	}

	return work
}
