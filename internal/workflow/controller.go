// Package workflow drives the interactive menu: listing courses,
// listing assignments, and summarizing an assignment including its
// attachments. It depends only on narrow interfaces so the loop can be
// exercised with fakes.
package workflow

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nattapongd/classmate/internal/classroom"
	"github.com/nattapongd/classmate/internal/drive"
	"github.com/nattapongd/classmate/internal/logging"
	"github.com/nattapongd/classmate/internal/ui"
)

const (
	courseNameWidth = 40
	workTitleWidth  = 45
)

// CourseService lists the student's courses and coursework.
type CourseService interface {
	ListActiveCourses(ctx context.Context) ([]classroom.Course, error)
	ListCourseWork(ctx context.Context, courseID string) ([]classroom.CourseWork, error)
}

// AttachmentFetcher resolves a Drive file into an encoded attachment.
type AttachmentFetcher interface {
	FetchAttachment(ctx context.Context, fileID string) (*drive.Attachment, error)
}

// Summarizer produces displayable summary strings. Failures come back
// as marker-prefixed text, never as errors.
type Summarizer interface {
	SummarizeText(ctx context.Context, text string) string
	SummarizeFile(ctx context.Context, encoded, mimeType, fileName string) string
}

// Controller runs the menu loop. One logical thread of control: every
// remote call and every prompt is awaited in sequence.
type Controller struct {
	courses    CourseService
	fetcher    AttachmentFetcher
	summarizer Summarizer
	in         *bufio.Scanner
	out        io.Writer
	logger     *slog.Logger
}

// New creates a Controller reading selections from in and writing all
// user-facing output to out.
func New(courses CourseService, fetcher AttachmentFetcher, summarizer Summarizer, in io.Reader, out io.Writer, logger *slog.Logger) *Controller {
	return &Controller{
		courses:    courses,
		fetcher:    fetcher,
		summarizer: summarizer,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logging.WithService(logger, "workflow"),
	}
}

// Run displays the menu until the user exits or input ends.
func (c *Controller) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, "\n===== เมนูหลัก =====\n"+
			"1. ดูรายวิชา\n"+
			"2. ดูงานในรายวิชา\n"+
			"3. สรุปงานด้วย AI\n"+
			"0. ออกจากโปรแกรม\n"+
			"เลือกเมนู: ")

		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.listCourses(ctx)
		case "2":
			c.listAssignments(ctx)
		case "3":
			c.summarizeAssignment(ctx)
		case "0":
			fmt.Fprintln(c.out, "แล้วพบกันใหม่ 👋")
			return nil
		default:
			fmt.Fprintln(c.out, "⚠️ กรุณาเลือก 0-3")
		}
	}
}

// listCourses renders the (cached) course list in a box.
func (c *Controller) listCourses(ctx context.Context) {
	courses, err := c.courses.ListActiveCourses(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "เกิดข้อผิดพลาด: %v\n", err)
		return
	}
	if len(courses) == 0 {
		fmt.Fprintln(c.out, "ไม่พบรายวิชา")
		return
	}

	rows := make([]string, len(courses))
	for i, course := range courses {
		rows[i] = fmt.Sprintf("%d. %s", i+1, ui.Truncate(course.Name, courseNameWidth))
	}
	ui.RenderList(c.out, "📚 รายวิชาของคุณ", rows)
	fmt.Fprintf(c.out, "ทั้งหมด %d วิชา\n", len(courses))
}

// listAssignments prompts for a course and renders its coursework.
func (c *Controller) listAssignments(ctx context.Context) {
	course, ok := c.chooseCourse(ctx)
	if !ok {
		return
	}

	works, err := c.courses.ListCourseWork(ctx, course.ID)
	if err != nil {
		fmt.Fprintf(c.out, "เกิดข้อผิดพลาด: %v\n", err)
		return
	}
	if len(works) == 0 {
		fmt.Fprintln(c.out, "ไม่พบงานในวิชานี้")
		return
	}

	rows := make([]string, len(works))
	for i, work := range works {
		row := fmt.Sprintf("%d. %s", i+1, ui.Truncate(work.Title, workTitleWidth))
		if work.DueDate != nil {
			row += fmt.Sprintf(" (%s)", work.DueDate)
		}
		rows[i] = row
	}
	ui.RenderList(c.out, "📝 งานในวิชา "+ui.Truncate(course.Name, courseNameWidth), rows)
	fmt.Fprintf(c.out, "ทั้งหมด %d งาน\n", len(works))
}

// summarizeAssignment prompts for a course and an assignment, then
// summarizes the assignment's attachments and text. Attachments are
// processed one after another in material order; a failed or
// unsupported attachment is skipped with a warning, never an abort.
func (c *Controller) summarizeAssignment(ctx context.Context) {
	course, ok := c.chooseCourse(ctx)
	if !ok {
		return
	}

	works, err := c.courses.ListCourseWork(ctx, course.ID)
	if err != nil {
		fmt.Fprintf(c.out, "เกิดข้อผิดพลาด: %v\n", err)
		return
	}
	if len(works) == 0 {
		fmt.Fprintln(c.out, "ไม่พบงานในวิชานี้")
		return
	}

	for i, work := range works {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, ui.Truncate(work.Title, workTitleWidth))
	}
	fmt.Fprint(c.out, "เลือกงาน (0 เพื่อยกเลิก): ")
	line, ok := c.readLine()
	if !ok {
		return
	}
	idx, ok := parseSelection(line, len(works))
	if !ok {
		return
	}
	work := works[idx]

	fmt.Fprintf(c.out, "\n📌 %s\n", work.Title)
	if work.Description != "" {
		fmt.Fprintf(c.out, "รายละเอียด: %s\n", work.Description)
	}
	if work.DueDate != nil {
		fmt.Fprintf(c.out, "กำหนดส่ง: %s\n", work.DueDate)
	}

	for _, m := range work.Materials {
		if m.Link != nil {
			fmt.Fprintf(c.out, "🔗 ลิงก์: %s\n", m.Link.URL)
			continue
		}
		if m.DriveFile == nil {
			continue
		}

		att, err := c.fetcher.FetchAttachment(ctx, m.DriveFile.ID)
		if err != nil {
			c.logger.Warn("attachment skipped", logging.Operation("summarize"), slog.String(logging.KeyFile, m.DriveFile.ID), logging.Err(err))
			fmt.Fprintf(c.out, "⚠️ ดึงไฟล์ %s ไม่สำเร็จ: %v\n", m.DriveFile.Title, err)
			continue
		}
		if !att.Summarizable() {
			c.logger.Debug("unsupported attachment type", logging.Operation("summarize"), slog.String("mime_type", att.MimeType))
			fmt.Fprintf(c.out, "⚠️ ไม่รองรับไฟล์ประเภท %s (%s)\n", att.MimeType, att.Name)
			continue
		}

		fmt.Fprintf(c.out, "\n📎 %s\n", att.Name)
		result := c.summarizer.SummarizeFile(ctx, att.Data, att.MimeType, att.Name)
		fmt.Fprintln(c.out, indent(result, "   "))
	}

	fmt.Fprintln(c.out, "\n🤖 สรุปงาน:")
	fmt.Fprintln(c.out, c.summarizer.SummarizeText(ctx, assignmentText(work)))
}

// chooseCourse lists courses and prompts for a selection. A listing
// failure prints the message and aborts the operation; an invalid
// selection cancels silently.
func (c *Controller) chooseCourse(ctx context.Context) (classroom.Course, bool) {
	courses, err := c.courses.ListActiveCourses(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "เกิดข้อผิดพลาด: %v\n", err)
		return classroom.Course{}, false
	}
	if len(courses) == 0 {
		fmt.Fprintln(c.out, "ไม่พบรายวิชา")
		return classroom.Course{}, false
	}

	for i, course := range courses {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, ui.Truncate(course.Name, courseNameWidth))
	}
	fmt.Fprint(c.out, "เลือกวิชา (0 เพื่อยกเลิก): ")
	line, ok := c.readLine()
	if !ok {
		return classroom.Course{}, false
	}
	idx, ok := parseSelection(line, len(courses))
	if !ok {
		return classroom.Course{}, false
	}
	return courses[idx], true
}

func (c *Controller) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// parseSelection returns the zero-based index for a 1-based selection.
// A selection is valid only if it parses as an integer within
// [1, count]; everything else, including the "0" cancel sentinel, is a
// silent cancel.
func parseSelection(s string, count int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}

// assignmentText builds the composite text block sent to text
// summarization: title, optional description, optional due date.
func assignmentText(work classroom.CourseWork) string {
	var b strings.Builder
	b.WriteString("ชื่องาน: " + work.Title)
	if work.Description != "" {
		b.WriteString("\nรายละเอียด: " + work.Description)
	}
	if work.DueDate != nil {
		b.WriteString("\nกำหนดส่ง: " + work.DueDate.String())
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
