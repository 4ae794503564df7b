// Package classroom provides read-only access to Google Classroom
// courses and coursework.
package classroom
