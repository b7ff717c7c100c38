// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discussion

import (
	"fmt"
	"strings"
)

// mockReviews is the fixed synthetic dataset used when every proxy strategy
// fails. Eight plausible lines of student chatter; deterministic so tests
// and repeated runs see identical output.
var mockReviews = []string{
	"The midterm is identical to the practice exam. Don't waste time on the textbook, just grind the past papers.",
	"Warning: The professor loves trick questions on 'exceptions to the rule'. Memorize the edge cases.",
	"The group project is 40% of the grade. If you get bad teammates, go to office hours immediately.",
	"Lectures are recorded but the audio is terrible. You actually have to go to class to hear the examples.",
	"Avoid the 8am section, the TA for the afternoon slot is way more helpful with the labs.",
	"They curve the final heavily because the average is usually around 55%. Don't panic if you fail the first quiz.",
	"The textbook PDF is in the class Discord. Do not buy it.",
	"Week 7 is the 'Panic Zone'. The workload triples out of nowhere.",
}

// mockData renders the synthetic dataset for the query. The course,
// university, and professor strings flavor the output only; the review
// lines themselves are fixed.
func mockData(q Query) string {
	profString := ""
	if strings.TrimSpace(q.Professor) != "" {
		profString = " taught by " + q.Professor
	}
	header := fmt.Sprintf("[SIMULATION MODE ACTIVE] Could not reach the discussion source. Generated realistic student chatter for %s at %s%s:",
		q.CourseCode, q.University, profString)

	lines := make([]string, 0, len(mockReviews))
	for _, review := range mockReviews {
		lines = append(lines, fmt.Sprintf("- [r/%sStudent] %s", strings.ReplaceAll(q.University, " ", ""), review))
	}

	return header + "\n\n" + strings.Join(lines, "\n")
}
