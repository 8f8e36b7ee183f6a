package stackoverflow

import (
	"fmt"
	"html"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/idgen"
)

// Post mirrors the union of question and answer fields this service reads.
// Titles arrive HTML-escaped; answers from the list endpoint usually carry
// neither title nor link.
type Post struct {
	QuestionID   int64    `json:"question_id"`
	AnswerID     int64    `json:"answer_id"`
	PostType     string   `json:"post_type"`
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	CreationDate int64    `json:"creation_date"`
	Score        int      `json:"score"`
	Tags         []string `json:"tags"`
	IsAccepted   bool     `json:"is_accepted"`
}

type rule struct {
	typ    activity.Type
	render func(site string, p Post) (title, desc, link string)
}

// rules is the closed mapping from post kinds to activity types. Kinds
// absent here keep their raw name as the type.
var rules = map[string]rule{
	"question": {
		typ: activity.TypeQuestion,
		render: func(site string, p Post) (string, string, string) {
			title := "Asked: " + html.UnescapeString(p.Title)
			link := p.Link
			if link == "" && p.QuestionID > 0 {
				link = fmt.Sprintf("%s/q/%d", siteURL(site), p.QuestionID)
			}
			return title, "", link
		},
	},
	"answer": {
		typ: activity.TypeAnswer,
		render: func(site string, p Post) (string, string, string) {
			title := "Posted an answer"
			if p.Title != "" {
				title = "Answered: " + html.UnescapeString(p.Title)
			}
			desc := ""
			if p.IsAccepted {
				desc = "Accepted answer"
			}
			link := p.Link
			if link == "" && p.AnswerID > 0 {
				link = fmt.Sprintf("%s/a/%d", siteURL(site), p.AnswerID)
			}
			return title, desc, link
		},
	},
}

// Normalize converts one raw post into an Activity. kind is the endpoint
// the post came from; a post_type field on the post itself takes
// precedence. It reports ok=false when the post has no creation date.
func Normalize(site, kind string, p Post) (activity.Activity, bool) {
	if p.PostType != "" {
		kind = p.PostType
	}
	if p.CreationDate == 0 {
		return activity.Activity{}, false
	}
	ts := time.Unix(p.CreationDate, 0).UTC()

	act := activity.Activity{
		ID:        postID(p),
		Source:    activity.SourceStackOverflow,
		Timestamp: ts,
		Tags:      p.Tags,
	}
	if act.ID == "" {
		act.ID = idgen.FromTimestamp(ts)
	}

	if r, ok := rules[kind]; ok {
		act.Type = r.typ
		act.Title, act.Description, act.URL = r.render(site, p)
		return act, true
	}

	if kind != "" {
		act.Type = activity.Type(kind)
	} else {
		act.Type = activity.TypeGeneric
	}
	act.Title = html.UnescapeString(p.Title)
	if act.Title == "" {
		act.Title = "Activity on " + siteName(site)
	}
	act.URL = p.Link
	return act, true
}

func postID(p Post) string {
	switch {
	case p.AnswerID > 0:
		return fmt.Sprintf("%d", p.AnswerID)
	case p.QuestionID > 0:
		return fmt.Sprintf("%d", p.QuestionID)
	}
	return ""
}

func siteName(site string) string {
	if site == "" {
		return "stackoverflow"
	}
	return site
}

// siteURL maps an API site parameter to its browsable host. Covers the
// main-site naming convention; meta and regional sites are out of scope.
func siteURL(site string) string {
	return "https://" + siteName(site) + ".com"
}
