package utils

import (
	"strings"

	"civicconnect-be/models"
)

// Classification is the result of running the keyword rules over a report.
type Classification struct {
	Category   models.IssueCategory
	Severity   models.IssueSeverity
	Department string
}

// categoryKeywords is checked in order; the first group with a hit wins.
var categoryKeywords = []struct {
	category models.IssueCategory
	words    []string
}{
	{models.CategoryRoad, []string{"pothole", "road", "street", "sidewalk", "traffic"}},
	{models.CategoryWaste, []string{"garbage", "trash", "waste", "litter", "cleanliness", "dustbin"}},
	{models.CategoryWater, []string{"water", "leak", "sewage", "drain", "pipeline"}},
	{models.CategoryElectricity, []string{"electric", "power", "streetlight", "electricity", "pole"}},
}

var urgencyKeywords = []string{"accident", "danger", "blocked", "fire", "collapse", "exposed wire", "major"}

// departmentByCategory maps every category to the municipal body that owns it.
var departmentByCategory = map[models.IssueCategory]string{
	models.CategoryRoad:        "Public Works Department",
	models.CategoryWaste:       "Solid Waste Management",
	models.CategoryWater:       "Water Supply & Sewerage",
	models.CategoryElectricity: "Electricity Board",
	models.CategoryOther:       "General Administration",
}

// Classify derives category, severity and responsible department from the
// free text of a report. Category and severity checks are independent.
func Classify(title, description string) Classification {
	text := strings.ToLower(title + " " + description)

	category := models.CategoryOther
	for _, group := range categoryKeywords {
		if containsAny(text, group.words) {
			category = group.category
			break
		}
	}

	severity := models.SeverityNonUrgent
	if containsAny(text, urgencyKeywords) {
		severity = models.SeverityUrgent
	}

	return Classification{
		Category:   category,
		Severity:   severity,
		Department: departmentByCategory[category],
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
