// Package content holds the compiled-in biographical data of the site.
package content

import "github.com/starford/folio/internal/models"

// Profile is the owner shown on Home and in the contact details.
var Profile = models.Profile{
	Name:     "Haseeb",
	Headline: "Data Science Student",
	Phone:    "+91 97455 81670",
	Email:    "create.haseeb@gmail.com",
	Location: "Edavanna, Kerala, India",
	Photo:    "/images/IMG_0327.jpeg",
	Summary: "Passionate about data science, exploring data analytics, programming, and problem-solving. " +
		"Driven by curiosity to leverage data for informed decision-making and continuous learning.",
	Links: []models.Link{
		{Label: "LinkedIn", URL: "#", Icon: "linkedin"},
		{Label: "GitHub", URL: "#", Icon: "github"},
		{Label: "CV", URL: "#", Icon: "file-user"},
		{Label: "Instagram", URL: "#", Icon: "instagram"},
	},
}

// About holds the About section paragraphs in display order.
var About = []string{
	"Hello, I'm Haseeb, a degree student with a passion for data science. Currently, I am exploring the vast " +
		"world of data and honing my skills in analytics, programming, and problem-solving. My curiosity and drive " +
		"for continuous learning guide me as I deepen my understanding of how data can be leveraged to make better decisions.",
	"As an individual who enjoys both technical challenges and creative thinking, I am always seeking new ways " +
		"to apply my knowledge and skills. Outside of my studies, I enjoy working with various tools and techniques " +
		"that allow me to connect the dots between complex datasets and real-world applications.",
	"Thank you for visiting my website! I appreciate you taking the time to read a little about me.",
}

// Skills groups skill names by area.
var Skills = []models.SkillGroup{
	{Title: "Skills", Skills: []string{"Python", "SQL", "Data Analysis", "Data Visualization", "AI Tools"}},
	{Title: "Software", Skills: []string{
		"Adobe Photoshop", "Adobe Illustrator", "Excel", "Access", "Microsoft Office", "Power BI", "Adobe InDesign",
	}},
}

// Education lists degrees, most recent first.
var Education = []models.Degree{
	{
		Title:       "Bachelor of Computer Applications",
		Institution: "University of Calicut",
		Period:      "2022 - Present",
		Highlights: []string{
			"Programming in C",
			"Data Structures and Algorithms",
			"Database Management Systems",
			"Problem-solving and Critical Thinking",
		},
	},
	{
		Title:       "Higher Secondary (Plus Two)",
		Institution: "Kerala State Board",
		Period:      "2020 - 2022",
	},
	{
		Title:       "Secondary Education",
		Institution: "Darul Irfan",
		Period:      "2014 - 2020",
		Highlights:  []string{"Many softwares", "Literature"},
	},
}

// Experience lists jobs, most recent first.
var Experience = []models.Job{
	{
		Role:    "Accounts Assistant",
		Company: "Family Business",
		Period:  "2023 - Present",
		Highlights: []string{
			"Collaborated with a colleague to create a Google Sheet for automating daily and monthly stock, expense, and profit calculations",
			"Streamlined stock tracking processes, reducing errors and improving efficiency by 40%",
			"Prepared detailed daily and monthly financial reports to support decision-making",
		},
	},
	{
		Role:    "Marketing Analyst",
		Company: "Magic Tool Creative Hub",
		Period:  "2023",
		Link:    &models.Link{Label: "Instagram Page", URL: "https://www.instagram.com/magictool.creative.hub/"},
		Highlights: []string{
			"Automated campaign performance reporting using tools like Google Sheets and Excel, reducing manual work by 30%",
			"Analyzed audience engagement metrics to identify trends and improve campaign effectiveness",
			"Designed Instagram posts to align with campaign goals and enhance brand visibility",
		},
	},
	{
		Role:    "Freelance Graphic Designer",
		Company: "Self-employed",
		Period:  "2021 - 2023",
		Highlights: []string{
			"Delivered custom graphic design solutions for branding, social media posts, and marketing materials",
			"Collaborated with clients to create designs aligned with their business goals, improving customer engagement",
		},
	},
}

// Certificates is the certificate catalog. Pinned entries show by default.
var Certificates = []models.Certificate{
	{
		ID:            "meta-da-sql",
		Title:         "Data Analysis with Spreadsheets and SQL",
		IssuedBy:      "Meta",
		IssueDate:     "February 2025",
		CredentialID:  "ZF5LOYO73PRJ",
		CredentialURL: "https://www.coursera.org/account/accomplishments/verify/ZF5LOYO73PRJ",
		Skills:        "Data Analysis, Machine Learning",
		PDFURL:        "/pdf/DA2.pdf",
		Category:      "Data Analytics",
		IsPinned:      true,
	},
	{
		ID:            "kaggle-intro-sql",
		Title:         "Intro to SQL",
		IssuedBy:      "Kaggle",
		IssueDate:     "February 2025",
		CredentialURL: "https://www.kaggle.com/learn/certification/haseeb666/intro-to-sql",
		Skills:        "SQL",
		PDFURL:        "/pdf/SQL-Kaggle.pdf",
		Category:      "Data Analytics",
		IsPinned:      true,
	},
	{
		ID:            "meta-intro-da",
		Title:         "Introduction to Data Analytics",
		IssuedBy:      "Meta",
		IssueDate:     "January 2025",
		CredentialID:  "46A0BUNP8V8W",
		CredentialURL: "https://www.coursera.org/account/accomplishments/verify/46A0BUNP8V8W",
		Skills:        "Data Analysis",
		PDFURL:        "/pdf/DA1.pdf",
		Category:      "Data Analytics",
		IsPinned:      true,
	},
	{
		ID:            "coursera-excel",
		Title:         "Introduction to Data Analysis using Microsoft Excel",
		IssuedBy:      "Coursera Project Network",
		IssueDate:     "August 2024",
		CredentialID:  "SRYB8Q35SLZ2",
		CredentialURL: "https://www.coursera.org/account/accomplishments/verify/SRYB8Q35SLZ2",
		Skills:        "Microsoft Excel",
		PDFURL:        "/pdf/EX1.pdf",
	},
	{
		ID:           "edapt-html",
		Title:        "Web Development With HTML",
		IssuedBy:     "Edapt",
		IssueDate:    "June 2022",
		CredentialID: "EDPT1655911527629M",
		Skills:       "HTML, Cascading Style Sheets (CSS)",
		PDFURL:       "/pdf/HTML.pdf",
	},
}

// Projects is the project catalog opened in the carousel modal.
var Projects = []models.Project{
	{
		Slug:             "sales-dashboard",
		Title:            "Sales Dashboard",
		ShortDescription: "Interactive Power BI dashboard over monthly retail sales.",
		FullDescription: "An end-to-end reporting project: raw spreadsheet exports are cleaned with SQL, " +
			"modelled into a star schema and visualised in Power BI with drill-downs per region and product line.",
		ProjectURL: "#",
		GitHubURL:  "#",
		Date:       "January 2024",
		Skills:     []string{"SQL", "Power BI", "Excel"},
		Images:     []string{"/images/IMG_0327.jpeg", "/images/HTML.png", "/images/CA2.jpeg"},
	},
	{
		Slug:             "stock-tracker",
		Title:            "Stock Tracker Sheet",
		ShortDescription: "Automated stock, expense and profit calculations in Google Sheets.",
		FullDescription:  "A shared spreadsheet that replaced manual daily stock counts with formulas and pivot summaries.",
		ProjectURL:       "#",
		GitHubURL:        "#",
		Date:             "March 2023",
		Skills:           []string{"Google Sheets", "Data Analysis"},
		Images:           []string{"/images/CA2.jpeg"},
	},
}

// Posts is the blog catalog. Bodies live in the post directory of the site root.
var Posts = []models.Post{
	{
		ID:       "2025-02-03",
		Title:    "Understanding SQL Joins",
		Category: "Data Analytics",
		Date:     "2025-02-03",
		Image:    "https://www.devtodev.com/upload/images/sql5_2.png",
		Excerpt:  "Inner, left, right and full joins explained with small tables you can run yourself.",
		Source:   "2025-02-03.md",
		Format:   models.FormatMarkdown,
	},
	{
		ID:       "2025-01-10",
		Title:    "Mastering CSS Grid",
		Category: "Web Development",
		Date:     "2025-01-10",
		Image:    "/images/HTML.png",
		Excerpt:  "Template areas, auto-fit and minmax for layouts that do not need media queries.",
		Source:   "2025-01-10.html",
		Format:   models.FormatHTML,
	},
}
