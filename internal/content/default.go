package content

import "github.com/yaswanthreddy/portfolio/internal/types"

// Default returns the built-in portfolio. Each call returns a fresh value,
// so callers cannot alter what later callers see.
func Default() *types.Portfolio {
	return &types.Portfolio{
		Profile: types.Profile{
			Name:     "Yaswanth Reddy Duggasani",
			Headline: "Assistant System Engineer",
			Email:    "duggasaniyaswanth333@gmail.com",
			Stats: []types.Stat{
				{Label: "Experience", Value: "2+ Years"},
				{Label: "Projects", Value: "10+"},
				{Label: "Publications", Value: "2"},
				{Label: "Skills", Value: "15+"},
			},
			Links: []types.SocialLink{
				{Label: "LinkedIn", URL: "https://linkedin.com"},
				{Label: "GitHub", URL: "https://github.com"},
				{Label: "Email", URL: "mailto:duggasaniyaswanth333@gmail.com"},
			},
			Footer: "© 2024 Yaswanth Reddy Duggasani. All rights reserved.",
		},
		Skills: []types.Skill{
			{Name: "Python", Level: 9},
			{Name: "Java", Level: 8},
			{Name: "ML/AI", Level: 8},
			{Name: "Database", Level: 7},
			{Name: "Cloud", Level: 7},
			{Name: "Testing", Level: 8},
		},
		Timeline: []types.TimelineEntry{
			{Task: "TCS", Start: "2024-06-01", End: "2025-01-08", Role: "Assistant System Engineer"},
			{Task: "Energytech", Start: "2023-06-01", End: "2023-09-30", Role: "Software Analyst"},
			{Task: "Energytech", Start: "2023-01-01", End: "2023-05-30", Role: "Software Intern"},
		},
		Experiences: []types.Experience{
			{
				Role:     "Assistant System Engineer",
				Company:  "Tata Consultancy Services",
				Period:   types.Period{Start: "June 2024", End: "January 2025"},
				Location: "Chennai, India",
			},
			{
				Role:         "Software Analyst",
				Company:      "Energytech Global",
				Period:       types.Period{Start: "June 2023", End: "September 2023"},
				Location:     "Hyderabad, India",
				Achievements: []string{"Reduced costs by 30%"},
			},
			{
				Role:     "Software Intern",
				Company:  "Energytech Global",
				Period:   types.Period{Start: "January 2023", End: "May 2023"},
				Location: "Hyderabad, India",
			},
		},
		Projects: []types.Project{
			{
				Title:        "Inventory Management System",
				Description:  "Full-stack application using Java and MySQL",
				Technologies: []string{"Java", "MySQL", "Spring Boot"},
				Metrics: []types.Metric{
					{Name: "Efficiency", Value: "+40%"},
					{Name: "Cost Reduction", Value: "30%"},
				},
			},
			{
				Title:        "Formula 1 Analytics",
				Description:  "Interactive dashboard using Tableau",
				Technologies: []string{"Tableau", "Python", "Data Analysis"},
				Metrics: []types.Metric{
					{Name: "Insights Generated", Value: "50+"},
					{Name: "Data Points", Value: "10k+"},
				},
			},
			{
				Title:        "Apparel Recommender",
				Description:  "ML-based recommendation engine",
				Technologies: []string{"Python", "ML", "Neural Networks"},
				Metrics: []types.Metric{
					{Name: "Accuracy", Value: "85%"},
					{Name: "Users", Value: "1000+"},
				},
			},
		},
	}
}
