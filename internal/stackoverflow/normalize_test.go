package stackoverflow

import (
	"testing"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

func TestNormalizeQuestion(t *testing.T) {
	p := Post{
		QuestionID:   111,
		Title:        "How do I cancel a goroutine?",
		Link:         "https://stackoverflow.com/questions/111/how-do-i-cancel-a-goroutine",
		CreationDate: 1704207845,
		Tags:         []string{"go", "concurrency"},
	}
	act, ok := Normalize("stackoverflow", "question", p)
	if !ok {
		t.Fatal("expected post to normalize")
	}
	if act.Source != activity.SourceStackOverflow {
		t.Errorf("source = %q", act.Source)
	}
	if act.Type != activity.TypeQuestion {
		t.Errorf("type = %q, want question", act.Type)
	}
	if act.Title != "Asked: How do I cancel a goroutine?" {
		t.Errorf("title = %q", act.Title)
	}
	if act.URL != p.Link {
		t.Errorf("url = %q", act.URL)
	}
	if act.ID != "111" {
		t.Errorf("id = %q", act.ID)
	}
	if len(act.Tags) != 2 || act.Tags[0] != "go" {
		t.Errorf("tags = %v", act.Tags)
	}
	want := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	if !act.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", act.Timestamp, want)
	}
}

func TestNormalizeQuestionUnescapesTitle(t *testing.T) {
	p := Post{QuestionID: 1, Title: "Why is &lt;nil&gt; != nil?", CreationDate: 1704207845}
	act, _ := Normalize("stackoverflow", "question", p)
	if act.Title != "Asked: Why is <nil> != nil?" {
		t.Errorf("title = %q", act.Title)
	}
}

func TestNormalizeAnswerWithoutTitle(t *testing.T) {
	p := Post{AnswerID: 222, CreationDate: 1704207845, IsAccepted: true}
	act, ok := Normalize("stackoverflow", "answer", p)
	if !ok {
		t.Fatal("expected post to normalize")
	}
	if act.Type != activity.TypeAnswer {
		t.Errorf("type = %q, want answer", act.Type)
	}
	if act.Title != "Posted an answer" {
		t.Errorf("title = %q", act.Title)
	}
	if act.Description != "Accepted answer" {
		t.Errorf("description = %q", act.Description)
	}
	if act.URL != "https://stackoverflow.com/a/222" {
		t.Errorf("url = %q", act.URL)
	}
	if act.ID != "222" {
		t.Errorf("id = %q", act.ID)
	}
}

func TestNormalizeAnswerWithTitle(t *testing.T) {
	p := Post{AnswerID: 222, Title: "How to cancel?", CreationDate: 1704207845}
	act, _ := Normalize("stackoverflow", "answer", p)
	if act.Title != "Answered: How to cancel?" {
		t.Errorf("title = %q", act.Title)
	}
	if act.Description != "" {
		t.Errorf("description = %q, want empty for unaccepted answers", act.Description)
	}
}

func TestNormalizeUnmappedKindKeepsName(t *testing.T) {
	p := Post{QuestionID: 5, Title: "A wiki entry", CreationDate: 1704207845}
	act, ok := Normalize("stackoverflow", "wiki", p)
	if !ok {
		t.Fatal("expected post to normalize")
	}
	if act.Type != activity.Type("wiki") {
		t.Errorf("type = %q, want raw kind preserved", act.Type)
	}
	if act.Title != "A wiki entry" {
		t.Errorf("title = %q", act.Title)
	}
}

func TestNormalizePostTypeOverridesEndpointKind(t *testing.T) {
	p := Post{AnswerID: 9, PostType: "answer", CreationDate: 1704207845}
	act, _ := Normalize("stackoverflow", "question", p)
	if act.Type != activity.TypeAnswer {
		t.Errorf("type = %q, want post_type to win", act.Type)
	}
}

func TestNormalizeDropsMissingCreationDate(t *testing.T) {
	p := Post{QuestionID: 1, Title: "No date"}
	if _, ok := Normalize("stackoverflow", "question", p); ok {
		t.Error("expected drop for missing creation_date")
	}
}

func TestNormalizeSiteAwareURL(t *testing.T) {
	p := Post{AnswerID: 7, CreationDate: 1704207845}
	act, _ := Normalize("serverfault", "answer", p)
	if act.URL != "https://serverfault.com/a/7" {
		t.Errorf("url = %q", act.URL)
	}
}
