package chart

import (
	"time"

	"feedbackdesk/internal/domain/reviews"
	"feedbackdesk/internal/sentiment"
)

const dayLayout = "2006-01-02"

type Series struct {
	Sentiment sentiment.Sentiment `json:"sentiment"`
	Counts    []int               `json:"counts"`
}

// Counts is a day x sentiment table. Days runs over every calendar day of
// the range; Series only holds sentiments that occur, alphabetically.
type Counts struct {
	Days   []string `json:"days"`
	Series []Series `json:"series"`
}

func (c Counts) Total() int {
	n := 0
	for _, s := range c.Series {
		for _, v := range s.Counts {
			n += v
		}
	}
	return n
}

// Aggregate groups recs by calendar day (in start's location) and sentiment.
// Records outside the day span are ignored.
func Aggregate(recs []reviews.Record, start, end time.Time) Counts {
	loc := start.Location()
	first := truncateDay(start)
	last := truncateDay(end.In(loc))

	var c Counts
	index := map[string]int{}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		index[key] = len(c.Days)
		c.Days = append(c.Days, key)
	}

	table := map[sentiment.Sentiment][]int{}
	for _, rec := range recs {
		i, ok := index[rec.Date.In(loc).Format(dayLayout)]
		if !ok {
			continue
		}
		row, ok := table[rec.Sentiment]
		if !ok {
			row = make([]int, len(c.Days))
			table[rec.Sentiment] = row
		}
		row[i]++
	}

	for _, s := range sentiment.All {
		if row, ok := table[s]; ok {
			c.Series = append(c.Series, Series{Sentiment: s, Counts: row})
		}
	}
	return c
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
