package classroom

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	classroomapi "google.golang.org/api/classroom/v1"
	"google.golang.org/api/option"

	"github.com/nattapongd/classmate/internal/logging"
)

// newTestClient points a Client at a local test server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), srv.Client(), logging.New("error"), option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	return client
}

func TestListActiveCoursesCachesFirstResult(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"courses":[{"id":"c1","name":"Math"},{"id":"c2","name":"Physics"}]}`)
	})

	ctx := context.Background()
	first, err := client.ListActiveCourses(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := client.ListActiveCourses(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second listing must be served from the cache")
	if &first[0] != &second[0] {
		t.Error("cached listing must return the same underlying slice")
	}
}

func TestListActiveCoursesEmptyResultIsNotCached(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			fmt.Fprint(w, `{"courses":[]}`)
			return
		}
		fmt.Fprint(w, `{"courses":[{"id":"c1","name":"Math"}]}`)
	})

	ctx := context.Background()
	first, err := client.ListActiveCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, first)

	second, err := client.ListActiveCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 2, hits)
}

func TestListActiveCoursesError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	_, err := client.ListActiveCourses(context.Background())
	assert.Error(t, err)
}

func TestListCourseWorkIsFetchedFreshEveryCall(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"courseWork":[
			{"id":"w1","title":"Essay","description":"Write about X",
			 "dueDate":{"day":5,"month":6,"year":2024},
			 "materials":[
				{"driveFile":{"driveFile":{"id":"f1","title":"Template"}}},
				{"link":{"url":"https://example.com","title":"Reference"}},
				{"youtubeVideo":{"id":"yt1","title":"Intro"}}
			 ]}
		]}`)
	})

	ctx := context.Background()
	works, err := client.ListCourseWork(ctx, "c1")
	require.NoError(t, err)
	_, err = client.ListCourseWork(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, hits, "coursework listings must not be cached")

	require.Len(t, works, 1)
	work := works[0]
	assert.Equal(t, "w1", work.ID)
	assert.Equal(t, "Essay", work.Title)
	assert.Equal(t, "Write about X", work.Description)
	require.NotNil(t, work.DueDate)
	assert.Equal(t, "5/6/2024", work.DueDate.String())

	// Drive file and link survive; the YouTube material is dropped
	require.Len(t, work.Materials, 2)
	require.NotNil(t, work.Materials[0].DriveFile)
	assert.Equal(t, "f1", work.Materials[0].DriveFile.ID)
	assert.Equal(t, "Template", work.Materials[0].DriveFile.Title)
	require.NotNil(t, work.Materials[1].Link)
	assert.Equal(t, "https://example.com", work.Materials[1].Link.URL)
}

func TestToCourseWork(t *testing.T) {
	// Nil coursework yields the zero value
	assert.Equal(t, CourseWork{}, toCourseWork(nil))

	// Coursework without a due date keeps DueDate nil
	work := toCourseWork(&classroomapi.CourseWork{Id: "w1", Title: "Quiz"})
	assert.Equal(t, "w1", work.ID)
	assert.Nil(t, work.DueDate)
	assert.Empty(t, work.Materials)

	// A material with neither a Drive file nor a link is ignored
	work = toCourseWork(&classroomapi.CourseWork{
		Id: "w2",
		Materials: []*classroomapi.Material{
			{Form: &classroomapi.Form{FormUrl: "https://forms.example"}},
		},
	})
	assert.Empty(t, work.Materials)
}

func TestDueDateString(t *testing.T) {
	d := DueDate{Day: 5, Month: 6, Year: 2024}
	assert.Equal(t, "5/6/2024", d.String())

	// No zero padding
	d = DueDate{Day: 31, Month: 12, Year: 2025}
	assert.Equal(t, "31/12/2025", d.String())
}
