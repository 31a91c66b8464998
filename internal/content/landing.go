package content

// Brand is the product name shown in the navigation bar.
const Brand = "ModernSaaS"

// Meta is the page metadata.
var Meta = Metadata{
	Title:       "Modern SaaS Platform - Transform Your Business",
	Description: "A modern, responsive landing page built with Go components",
	Language:    "en",
}

// NavLinks are the navigation targets, in display order.
var NavLinks = []NavLink{
	{Name: "Features", Anchor: AnchorFeatures},
	{Name: "Testimonials", Anchor: AnchorTestimonials},
	{Name: "Pricing", Anchor: AnchorPricing},
}

// GetStarted is the call-to-action shown next to the navigation links.
var GetStarted = NavLink{Name: "Get Started", Anchor: AnchorPricing}

// Hero holds the banner copy.
var Hero = struct {
	Headline  string
	Highlight string
	Copy      string
	Primary   NavLink
	Secondary NavLink
}{
	Headline:  "Transform Your Business with",
	Highlight: "Modern Solutions",
	Copy: "Empower your team with cutting-edge tools designed to streamline workflows, " +
		"boost productivity, and drive growth. Join thousands of successful businesses.",
	Primary:   NavLink{Name: "Get Started", Anchor: AnchorPricing},
	Secondary: NavLink{Name: "Learn More", Anchor: AnchorFeatures},
}

// SectionHeader is the heading and subtitle above a card grid.
type SectionHeader struct {
	Lead      string
	Highlight string
	Subtitle  string
}

var (
	FeaturesHeader = SectionHeader{
		Lead:      "Powerful Features for",
		Highlight: "Modern Teams",
		Subtitle:  "Everything you need to succeed, all in one place. Built for teams who demand excellence.",
	}
	TestimonialsHeader = SectionHeader{
		Lead:      "Loved by",
		Highlight: "Thousands",
		Subtitle:  "Don't just take our word for it. Here's what our customers have to say.",
	}
	PricingHeader = SectionHeader{
		Lead:      "Simple, Transparent",
		Highlight: "Pricing",
		Subtitle:  "Choose the perfect plan for your needs. All plans include a 14-day free trial.",
	}
)

// Features are the feature grid records, in display order.
var Features = []Record{
	NewRecord("1", Symbol("🚀"), "Lightning Fast",
		"Experience blazing-fast performance with optimized code and modern infrastructure that scales with your needs."),
	NewRecord("2", Symbol("🔒"), "Secure & Reliable",
		"Enterprise-grade security with end-to-end encryption, regular backups, and 99.9% uptime guarantee."),
	NewRecord("3", Symbol("🎨"), "Beautiful Design",
		"Stunning, intuitive interfaces that your users will love. Fully customizable to match your brand."),
	NewRecord("4", Symbol("📊"), "Advanced Analytics",
		"Gain deep insights with powerful analytics and reporting tools. Make data-driven decisions with confidence."),
	NewRecord("5", Symbol("🔄"), "Seamless Integration",
		"Connect with your favorite tools and services. Our API makes integration simple and straightforward."),
	NewRecord("6", Symbol("💬"), "24/7 Support",
		"Our dedicated support team is always here to help. Get answers fast with live chat and email support."),
}

// Plan is a pricing tier.
type Plan struct {
	ID          string
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	CTA         string
	Highlighted bool
}

// Plans are the pricing tiers, in display order.
var Plans = []Plan{
	{
		ID:          "1",
		Name:        "Basic",
		Price:       "$29",
		Period:      "/month",
		Description: "Perfect for individuals and small teams getting started",
		Features: []string{
			"Up to 5 team members",
			"10 GB storage",
			"Basic analytics",
			"Email support",
			"Mobile app access",
		},
		CTA: "Get Started",
	},
	{
		ID:          "2",
		Name:        "Pro",
		Price:       "$79",
		Period:      "/month",
		Description: "Ideal for growing businesses that need more power",
		Features: []string{
			"Up to 25 team members",
			"100 GB storage",
			"Advanced analytics",
			"Priority support",
			"Custom integrations",
			"API access",
		},
		CTA:         "Start Free Trial",
		Highlighted: true,
	},
	{
		ID:          "3",
		Name:        "Enterprise",
		Price:       "$199",
		Period:      "/month",
		Description: "For large organizations with advanced needs",
		Features: []string{
			"Unlimited team members",
			"Unlimited storage",
			"Enterprise analytics",
			"24/7 dedicated support",
			"Custom integrations",
			"Advanced security",
			"SLA guarantee",
		},
		CTA: "Contact Sales",
	},
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID     string
	Name   string
	Role   string
	Photo  string
	Quote  string
	Rating int
}

// Testimonials are the customer quotes, in display order.
var Testimonials = []Testimonial{
	{
		ID:     "1",
		Name:   "Sarah Johnson",
		Role:   "CEO, TechStart Inc.",
		Photo:  "👩‍💼",
		Quote:  "This platform has completely transformed how we work. The productivity gains have been incredible, and our team loves using it every day.",
		Rating: 5,
	},
	{
		ID:     "2",
		Name:   "Michael Chen",
		Role:   "Product Manager, InnovateCo",
		Photo:  "👨‍💻",
		Quote:  "The best investment we've made this year. The ROI was evident within the first month. Highly recommend to any growing business.",
		Rating: 5,
	},
	{
		ID:     "3",
		Name:   "Emily Rodriguez",
		Role:   "Founder, DesignHub",
		Photo:  "👩‍🎨",
		Quote:  "Intuitive, powerful, and beautifully designed. It's rare to find a tool that checks all the boxes. This one does and more.",
		Rating: 5,
	},
}
