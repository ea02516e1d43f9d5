package skills

// Static lookup tables. These are read-only after package init and safe
// to share across concurrent callers.

// vocabulary lists canonical skill names probed directly against the
// full document text. Order is preserved in extraction results.
var vocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go",
	"Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "SQL",
	"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js",
	"Express", "Next.js", "Django", "Flask", "FastAPI", "Spring",
	"Rails", "Laravel", ".NET", "GraphQL", "gRPC",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
	"SQLite", "Cassandra", "DynamoDB", "Kafka", "RabbitMQ",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"Terraform", "Ansible", "Jenkins", "Git", "CI/CD", "Linux",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
	"Pandas", "NumPy", "Spark", "Hadoop", "Tableau", "Power BI",
	"Figma", "Jira", "Agile", "Scrum", "REST",
}

// aliases maps lowercased shorthand to the canonical display form.
// Unmapped tokens pass through Normalize unchanged apart from trimming.
var aliases = map[string]string{
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"py":         "Python",
	"golang":     "Go",
	"reactjs":    "React",
	"react.js":   "React",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"vuejs":      "Vue.js",
	"vue":        "Vue.js",
	"angularjs":  "Angular",
	"html5":      "HTML",
	"css3":       "CSS",
	"postgres":   "PostgreSQL",
	"psql":       "PostgreSQL",
	"mongo":      "MongoDB",
	"k8s":        "Kubernetes",
	"dotnet":     ".NET",
	"ml":         "Machine Learning",
	"es":         "Elasticsearch",
	"gh actions": "GitHub Actions",
}

// stoplist holds generic resume vocabulary that the header-pattern pass
// tends to pull in as false positives.
var stoplist = map[string]bool{
	"experience":       true,
	"experiences":      true,
	"experienced":      true,
	"work":             true,
	"working":          true,
	"history":          true,
	"employment":       true,
	"professional":     true,
	"career":           true,
	"education":        true,
	"degree":           true,
	"degrees":          true,
	"university":       true,
	"college":          true,
	"school":           true,
	"skills":           true,
	"skill":            true,
	"technologies":     true,
	"technology":       true,
	"tools":            true,
	"summary":          true,
	"objective":        true,
	"profile":          true,
	"projects":         true,
	"project":          true,
	"responsibilities": true,
	"team":             true,
	"years":            true,
	"year":             true,
	"current":          true,
	"present":          true,
	"knowledge":        true,
	"proficient":       true,
	"familiar":         true,
	"including":        true,
	"various":          true,
	"other":            true,
	"others":           true,
	"etc":              true,
	"and":              true,
	"with":             true,
}
