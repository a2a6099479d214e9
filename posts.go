package folio

// DefaultPosts returns the compiled-in post set served by the "builtin" source.
// A fresh slice is returned on every call.
func DefaultPosts() []BlogPost {
	return []BlogPost{
		{
			ID:      1,
			Title:   "Welcome to My Blog",
			Content: "This is the first post on my blog. Welcome everyone! Here I'll share my thoughts on various topics.",
			Date:    "2024-07-18",
			Author:  "Jane Smith",
			Image:   "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800&h=400&fit=crop",
		},
		{
			ID:      2,
			Title:   "Learning Next.js",
			Content: "Next.js is a powerful React framework. In this post, I'll explain why it's great for building web applications.",
			Date:    "2024-10-05",
			Author:  "Alex Johnson",
			Image:   "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=800&h=400&fit=crop",
		},
		{
			ID:      3,
			Title:   "The Future of Web Development",
			Content: "Web development is evolving rapidly. Let's discuss some trends and what to expect in the coming years.",
			Date:    "2024-12-15",
			Author:  "Sarah Williams",
			Image:   "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800&h=400&fit=crop",
		},
		{
			ID:      4,
			Title:   "Tips for Better Coding",
			Content: "Here are some tips to improve your coding skills: practice regularly, read code, and never stop learning.",
			Date:    "2025-01-10",
			Author:  "Michael Brown",
			Image:   "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=800&h=400&fit=crop",
		},
	}
}
