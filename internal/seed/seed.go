// Package seed populates an empty database with starter portfolio content.
package seed

import (
	"context"
	"log/slog"

	"aurafolio/internal/middleware"
	"aurafolio/internal/models"

	"gorm.io/gorm"
)

// EnsureSeeded inserts starter content once. A database that already holds
// at least one project is considered initialized and is left untouched.
// Failures on individual tables are logged and skipped so a partial seed
// never blocks startup.
func EnsureSeeded(ctx context.Context, db *gorm.DB) error {
	log := middleware.Logger

	var count int64
	if err := db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("database already seeded, skipping")
		return nil
	}

	log.Info("seeding database with starter content")

	seedTable(ctx, db, log, "projects", starterProjects())
	seedTable(ctx, db, log, "posts", starterPosts())
	seedTable(ctx, db, log, "videos", starterVideos())
	seedTable(ctx, db, log, "certificates", starterCertificates())
	seedTable(ctx, db, log, "jobs", starterJobs())
	seedTable(ctx, db, log, "reviews", starterReviews())
	seedTable(ctx, db, log, "qas", starterQAs())

	log.Info("database seeding complete")
	return nil
}

func seedTable[T any](ctx context.Context, db *gorm.DB, log *slog.Logger, table string, rows []T) {
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		log.Error("failed to seed table",
			slog.String("table", table),
			slog.String("error", err.Error()),
		)
	}
}

func starterProjects() []models.Project {
	return []models.Project{
		{
			Title:       "E-Commerce Platform",
			Description: "A modern e-commerce platform with seamless shopping experience, featuring advanced product filtering, secure payment integration, and real-time inventory management.",
			Category:    "Web Development",
			Featured:    true,
			Tags:        []string{"React", "Node.js", "Stripe", "MongoDB"},
			LiveURL:     "https://example.com",
			GithubURL:   "https://github.com/example",
		},
		{
			Title:       "Mobile Banking App",
			Description: "Intuitive mobile banking interface with enhanced security features, biometric authentication, and instant transaction capabilities.",
			Category:    "Mobile App",
			Featured:    true,
			Tags:        []string{"React Native", "Firebase", "Security"},
		},
		{
			Title:       "Brand Identity Design",
			Description: "Complete brand identity package including logo design, color palette, typography, and brand guidelines for a luxury fashion brand.",
			Category:    "Branding",
			Featured:    false,
			Tags:        []string{"Figma", "Illustrator", "Branding"},
		},
		{
			Title:       "Real Estate Dashboard",
			Description: "Comprehensive property management dashboard with analytics, tenant management, and financial reporting.",
			Category:    "UI/UX Design",
			Featured:    true,
			Tags:        []string{"UI/UX", "Dashboard", "Analytics"},
		},
	}
}

func starterPosts() []models.Post {
	return []models.Post{
		{
			Title:    "Getting Started with Web Development in 2025",
			Excerpt:  "Learn the fundamentals of modern web development and the latest tools you need to succeed.",
			Content:  "Web development is an exciting field that continues to evolve. In this comprehensive guide, we explore the essential technologies every aspiring web developer should master...",
			Author:   "Aurangzeb Sunny",
			ReadTime: "5 min read",
			Tags:     []string{"Web Dev", "Tutorial", "Beginner"},
		},
		{
			Title:    "Design Principles for Better UX",
			Excerpt:  "Discover key design principles that will elevate your user experience design skills.",
			Content:  "User experience design is more than just making things look pretty. It's about creating intuitive, accessible, and delightful experiences...",
			Author:   "Aurangzeb Sunny",
			ReadTime: "7 min read",
			Tags:     []string{"UX", "Design", "Best Practices"},
		},
		{
			Title:    "The Power of Modern CSS",
			Excerpt:  "Explore advanced CSS techniques that can transform your web designs.",
			Content:  "Modern CSS has evolved tremendously, offering powerful features like Grid, Flexbox, Custom Properties, and more...",
			Author:   "Aurangzeb Sunny",
			ReadTime: "6 min read",
			Tags:     []string{"CSS", "Frontend", "Tutorial"},
		},
	}
}

func starterVideos() []models.Video {
	return []models.Video{
		{
			Title:       "Building Modern Web Apps - Complete Tutorial",
			YoutubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Description: "Learn how to build modern, responsive web applications using React, TypeScript, and Tailwind CSS. This comprehensive tutorial covers everything from setup to deployment.",
		},
	}
}

func starterCertificates() []models.Certificate {
	return []models.Certificate{
		{Title: "Advanced React Development", Issuer: "Meta", Date: "2024"},
		{Title: "UI/UX Design Specialization", Issuer: "Google", Date: "2023"},
	}
}

func starterJobs() []models.Job {
	return []models.Job{
		{
			Title:        "Senior UI/UX Designer & Full Stack Developer",
			Company:      "Freelance",
			Period:       "2022 - Present",
			Description:  "Leading design and development initiatives for various clients, creating user-centered solutions and modern web applications. Specializing in React, Node.js, and responsive design.",
			Skills:       []string{"Figma", "React", "Node.js", "UI/UX", "TypeScript"},
			Achievements: []string{"Delivered 50+ projects", "Client satisfaction: 98%"},
			Current:      true,
		},
		{
			Title:        "Lead Frontend Developer",
			Company:      "Tech Innovations Inc.",
			Period:       "2020 - 2022",
			Description:  "Led frontend development team, architected scalable applications, and implemented best practices for code quality and performance.",
			Skills:       []string{"React", "Redux", "TypeScript", "Testing"},
			Achievements: []string{"Reduced load time by 40%", "Mentored 5 junior developers"},
		},
		{
			Title:        "UI/UX Designer",
			Company:      "Creative Studio",
			Period:       "2018 - 2020",
			Description:  "Designed user interfaces for web and mobile applications, conducted user research, and created interactive prototypes.",
			Skills:       []string{"Figma", "Sketch", "Prototyping", "User Research"},
			Achievements: []string{"Redesigned 3 major products", "Improved user engagement by 60%"},
		},
	}
}

func starterReviews() []models.Review {
	return []models.Review{
		{
			Name:    "John Anderson",
			Role:    "CEO",
			Company: "Startup Inc",
			Review:  "Exceptional work! Aurangzeb delivered beyond our expectations. His attention to detail and creative solutions truly set him apart. Highly recommended for any design or development project.",
			Rating:  5,
		},
		{
			Name:    "Sarah Mitchell",
			Role:    "Product Manager",
			Company: "Tech Solutions",
			Review:  "Working with Aurangzeb was a fantastic experience. He understood our vision perfectly and brought it to life with elegant design and clean code. Communication was excellent throughout.",
			Rating:  5,
		},
		{
			Name:    "Michael Chen",
			Role:    "Marketing Director",
			Company: "Digital Agency",
			Review:  "Outstanding professionalism and technical expertise. Aurangzeb transformed our outdated website into a modern, high-performing platform that exceeded all our goals.",
			Rating:  5,
		},
	}
}

func starterQAs() []models.QA {
	return []models.QA{
		{
			Question: "What services do you offer?",
			Answer:   "I offer comprehensive UI/UX design, web development (React, Next.js, Node.js), mobile app development, branding and identity design, digital marketing, SEO optimization, and e-commerce solutions.",
			Category: "Services",
			Order:    1,
		},
		{
			Question: "How long does a typical project take?",
			Answer:   "Project timelines vary based on scope and complexity. A typical landing page takes 1-2 weeks, a full website 3-6 weeks, and larger applications 2-4 months. I provide detailed timelines during consultation.",
			Category: "Timeline",
			Order:    2,
		},
		{
			Question: "What is your design process?",
			Answer:   "My process includes: 1) Discovery & Research, 2) Wireframing & Prototyping, 3) Visual Design, 4) Development, 5) Testing & QA, 6) Launch & Support. I maintain close collaboration throughout each phase.",
			Category: "Process",
			Order:    3,
		},
		{
			Question: "Do you provide ongoing support?",
			Answer:   "Yes! I offer various maintenance and support packages including bug fixes, content updates, performance optimization, and feature enhancements. All projects include 30 days of free support.",
			Category: "Support",
			Order:    4,
		},
		{
			Question: "What are your rates?",
			Answer:   "My rates vary depending on project complexity and requirements. I offer both fixed-price projects and hourly rates. Contact me for a detailed quote tailored to your specific needs.",
			Category: "Pricing",
			Order:    5,
		},
	}
}
