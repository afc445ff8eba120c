package rendering

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

func sampleExperience() types.Experience {
	return types.Experience{
		Role:         "Software Analyst",
		Company:      "Energytech Global",
		Period:       types.Period{Start: "June 2023", End: "September 2023"},
		Location:     "Hyderabad, India",
		Achievements: []string{"Reduced costs by 30%"},
	}
}

func sampleProject() types.Project {
	return types.Project{
		Title:        "Inventory Management System",
		Description:  "Full-stack application using Java and MySQL",
		Technologies: []string{"Java", "MySQL", "Spring Boot"},
		Metrics: []types.Metric{
			{Name: "Efficiency", Value: "+40%"},
			{Name: "Cost Reduction", Value: "30%"},
		},
	}
}

func newCards(t *testing.T) *Cards {
	t.Helper()
	cards, err := NewCards()
	require.NoError(t, err)
	return cards
}

func parseCard(t *testing.T, card template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(card)))
	require.NoError(t, err)
	return doc
}

func TestExperienceCard_ContainsEachFieldExactlyOnce(t *testing.T) {
	cards, err := newCards(t).Experiences([]types.Experience{sampleExperience()})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	// Counted on the text content: html/template writes some characters,
	// such as a leading "+", as entities in the markup.
	text := parseCard(t, cards[0]).Text()
	for _, want := range []string{
		"Software Analyst",
		"Energytech Global",
		"June 2023",
		"Hyderabad, India",
		"Reduced costs by 30%",
	} {
		assert.Equal(t, 1, strings.Count(text, want), "expected %q exactly once in:\n%s", want, cards[0])
	}
}

func TestExperienceCard_PlusSignSurvivesInText(t *testing.T) {
	exp := sampleExperience()
	exp.Achievements = []string{"+25% throughput"}

	cards, err := newCards(t).Experiences([]types.Experience{exp})
	require.NoError(t, err)

	doc := parseCard(t, cards[0])
	assert.Equal(t, "+25% throughput", doc.Find("ul.achievements li").Text())
}

func TestExperienceCard_AchievementsInOrder(t *testing.T) {
	exp := sampleExperience()
	exp.Achievements = []string{"Third", "First", "Second", "First"}

	cards, err := newCards(t).Experiences([]types.Experience{exp})
	require.NoError(t, err)

	doc := parseCard(t, cards[0])
	var items []string
	doc.Find("ul.achievements li").Each(func(_ int, s *goquery.Selection) {
		items = append(items, s.Text())
	})
	assert.Equal(t, []string{"Third", "First", "Second", "First"}, items)
}

func TestExperienceCard_NoAchievementsOmitsList(t *testing.T) {
	exp := sampleExperience()
	exp.Achievements = nil

	cards, err := newCards(t).Experiences([]types.Experience{exp})
	require.NoError(t, err)
	assert.NotContains(t, string(cards[0]), "achievements")
}

func TestExperienceCard_MissingRole(t *testing.T) {
	exp := sampleExperience()
	exp.Role = ""

	_, err := newCards(t).Experiences([]types.Experience{exp})
	require.Error(t, err)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "role", missing.Field)
	assert.Equal(t, types.KindExperience, missing.Kind)
}

func TestProjectCard_TagsAndMetricsInOrder(t *testing.T) {
	cards, err := newCards(t).Projects([]types.Project{sampleProject()})
	require.NoError(t, err)

	doc := parseCard(t, cards[0])
	assert.Equal(t, "Inventory Management System", doc.Find("h3.card-title").Text())

	var tags []string
	doc.Find(".tags .skill-tag").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s.Text())
	})
	assert.Equal(t, []string{"Java", "MySQL", "Spring Boot"}, tags)

	var metrics []string
	doc.Find(".metrics .metric").Each(func(_ int, s *goquery.Selection) {
		metrics = append(metrics, s.Text())
	})
	assert.Equal(t, []string{"Efficiency: +40%", "Cost Reduction: 30%"}, metrics)
}

func TestProjectCard_NoMetricsOmitsFragment(t *testing.T) {
	project := sampleProject()
	project.Metrics = nil

	cards, err := newCards(t).Projects([]types.Project{project})
	require.NoError(t, err)
	require.Len(t, cards, 1)

	doc := parseCard(t, cards[0])
	assert.Equal(t, 0, doc.Find(".metrics").Length())
	assert.NotContains(t, string(cards[0]), "metric")
}

func TestProjectCard_DescriptionIsSanitized(t *testing.T) {
	project := sampleProject()
	project.Description = `Uses <strong>Spring</strong><script>alert(1)</script>`

	cards, err := newCards(t).Projects([]types.Project{project})
	require.NoError(t, err)

	card := string(cards[0])
	assert.Contains(t, card, "<strong>Spring</strong>")
	assert.NotContains(t, card, "<script")

	doc := parseCard(t, cards[0])
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, "Uses Spring<script>alert(1)</script>", doc.Find("p.card-body").Text())
}

func TestCards_AngleBracketTextRendersLiterally(t *testing.T) {
	project := sampleProject()
	project.Description = "Parses <title> tags from pages"
	exp := sampleExperience()
	exp.Achievements = []string{"Migrated List<String> handlers to Go", "Cut latency"}

	projectCards, err := newCards(t).Projects([]types.Project{project})
	require.NoError(t, err)
	assert.Equal(t, "Parses <title> tags from pages", parseCard(t, projectCards[0]).Find("p.card-body").Text())

	expCards, err := newCards(t).Experiences([]types.Experience{exp})
	require.NoError(t, err)

	var items []string
	parseCard(t, expCards[0]).Find("ul.achievements li").Each(func(_ int, s *goquery.Selection) {
		items = append(items, s.Text())
	})
	assert.Equal(t, []string{"Migrated List<String> handlers to Go", "Cut latency"}, items)
}

func TestProjectCard_TitleIsEscaped(t *testing.T) {
	project := sampleProject()
	project.Title = "<b>Bold</b> title"

	cards, err := newCards(t).Projects([]types.Project{project})
	require.NoError(t, err)
	assert.Contains(t, string(cards[0]), "&lt;b&gt;Bold&lt;/b&gt; title")
}

func TestPublicationCard_Venue(t *testing.T) {
	pubs := []types.Publication{
		{Title: "Crop Yield Prediction", Conference: "ICACCS 2023", Identifier: "DOI: 10.1109/ICACCS57279.2023", Impact: "Cited 12 times"},
		{Title: "Sign Language Translation", Journal: "IJRASET", Identifier: "ISSN: 2321-9653", Impact: "Read 1k+ times"},
	}

	cards, err := newCards(t).Publications(pubs)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	first := parseCard(t, cards[0])
	assert.Equal(t, "Conference: ICACCS 2023", first.Find("p.venue").Text())
	assert.NotContains(t, string(cards[0]), "Journal:")

	second := parseCard(t, cards[1])
	assert.Equal(t, "Journal: IJRASET", second.Find("p.venue").Text())
	assert.NotContains(t, string(cards[1]), "Conference:")
}

func TestPublicationCard_MissingVenue(t *testing.T) {
	_, err := newCards(t).Publications([]types.Publication{
		{Title: "Untitled", Identifier: "n/a", Impact: "none"},
	})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "venue", missing.Field)
}

func TestCertificationCard(t *testing.T) {
	cards, err := newCards(t).Certifications([]types.Certification{
		{Title: "AWS Cloud Practitioner", Provider: "Amazon Web Services", Year: "2023"},
	})
	require.NoError(t, err)

	doc := parseCard(t, cards[0])
	assert.Equal(t, "AWS Cloud Practitioner", doc.Find("h3.card-title").Text())
	assert.Equal(t, "Amazon Web Services", doc.Find("p.card-subtitle").Text())
	assert.Equal(t, "2023", doc.Find("p.card-meta").Text())
}

func TestRenderKind(t *testing.T) {
	p := &types.Portfolio{
		Experiences: []types.Experience{sampleExperience()},
		Projects:    []types.Project{sampleProject(), sampleProject()},
	}
	cards := newCards(t)

	exp, err := cards.RenderKind(p, types.KindExperience)
	require.NoError(t, err)
	assert.Len(t, exp, 1)

	proj, err := cards.RenderKind(p, types.KindProject)
	require.NoError(t, err)
	assert.Len(t, proj, 2)

	pubs, err := cards.RenderKind(p, types.KindPublication)
	require.NoError(t, err)
	assert.Empty(t, pubs)

	_, err = cards.RenderKind(p, types.Kind("education"))
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestNewCardsFromDir_Override(t *testing.T) {
	dir := t.TempDir()
	content := `{{define "experience"}}<div>{{.Role}}</div>{{end}}
{{define "project"}}<div>{{.Title}}</div>{{end}}
{{define "publication"}}<div>{{.Title}}</div>{{end}}
{{define "certification"}}<div>{{.Title}}</div>{{end}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.html"), []byte(content), 0644))

	cards, err := NewCardsFromDir(dir)
	require.NoError(t, err)

	out, err := cards.Experiences([]types.Experience{sampleExperience()})
	require.NoError(t, err)
	assert.Equal(t, template.HTML("<div>Software Analyst</div>"), out[0])
}

func TestNewCardsFromDir_MissingKindTemplate(t *testing.T) {
	dir := t.TempDir()
	content := `{{define "experience"}}<div>{{.Role}}</div>{{end}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.html"), []byte(content), 0644))

	_, err := NewCardsFromDir(dir)
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "project")
}

func TestNewCardsFromDir_NotFound(t *testing.T) {
	_, err := NewCardsFromDir("/nonexistent/templates")
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template directory not found")
}

func TestNewCardsFromDir_InvalidTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.html"), []byte(`{{.Invalid{{}}`), 0644))

	_, err := NewCardsFromDir(dir)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}
