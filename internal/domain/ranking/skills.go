package ranking

import (
	"sort"
	"strings"
)

type synonymGroup struct {
	canonical string
	surfaces  []string
}

// Groups are matched in declaration order: when a surface form appears in more
// than one group, the earliest group owns it.
var synonymGroups = []synonymGroup{
	// Programming languages
	{"python", []string{"python", "py", "python3", "python2"}},
	{"javascript", []string{"javascript", "js", "ecmascript", "es6", "es2015"}},
	{"typescript", []string{"typescript", "ts"}},
	{"java", []string{"java", "jvm", "j2ee", "jdk", "openjdk", "core java"}},
	{"c#", []string{"c#", "csharp", "c sharp", ".net", "dotnet", ".net core", "asp.net"}},
	{"go", []string{"go", "golang"}},
	{"rust", []string{"rust", "rustlang"}},
	{"c++", []string{"c++", "cpp", "c plus plus"}},
	{"c", []string{"c", "c language", "ansi c"}},
	{"ruby", []string{"ruby", "rails", "ruby on rails", "ror"}},
	{"php", []string{"php", "laravel", "symfony"}},
	{"scala", []string{"scala"}},
	{"kotlin", []string{"kotlin", "android kotlin"}},
	{"swift", []string{"swift", "ios swift", "swiftui"}},
	{"r", []string{"r", "r language", "rstudio", "r programming"}},
	{"matlab", []string{"matlab"}},
	{"perl", []string{"perl"}},
	{"shell", []string{"shell", "bash", "sh", "zsh", "shell scripting", "bash scripting"}},

	// AI/ML core
	{"machine learning", []string{"machine learning", "ml", "ai/ml", "deep learning", "dl", "neural networks", "nn"}},
	{"artificial intelligence", []string{"artificial intelligence", "ai", "ai/ml"}},
	{"natural language processing", []string{"natural language processing", "nlp", "text processing", "text mining", "text analytics", "language models"}},
	{"computer vision", []string{"computer vision", "cv", "image recognition", "object detection", "image processing"}},
	{"data science", []string{"data science", "data scientist", "ds", "data analytics", "analytics"}},

	// LLM & generative AI
	{"llm", []string{"llm", "large language model", "large language models", "llms", "generative ai", "genai"}},
	{"llama", []string{"llama", "llama2", "llama-2", "llama3", "llama-3", "meta llama"}},
	{"gpt", []string{"gpt", "gpt-4", "gpt-3", "chatgpt", "openai", "gpt-4o"}},
	{"claude", []string{"claude", "claude-3", "anthropic"}},
	{"gemini", []string{"gemini", "google gemini", "bard"}},
	{"prompt engineering", []string{"prompt engineering", "prompting", "prompt design"}},
	{"rag", []string{"rag", "retrieval augmented generation", "retrieval-augmented"}},
	{"fine-tuning", []string{"fine-tuning", "fine tuning", "finetuning", "model tuning"}},

	// Agents & frameworks
	{"ai agents", []string{"ai agents", "agentic", "agent systems", "autonomous agents"}},
	{"langchain", []string{"langchain", "lanchain", "lang chain"}},
	{"llamaindex", []string{"llamaindex", "llama index", "llama-index"}},
	{"crewai", []string{"crewai", "crew ai", "crew"}},
	{"autogen", []string{"autogen", "auto gen", "microsoft autogen"}},

	// Vector databases & embeddings
	{"vector database", []string{"vector db", "vectordb", "vector database", "vector store"}},
	{"qdrant", []string{"qdrant"}},
	{"pinecone", []string{"pinecone"}},
	{"weaviate", []string{"weaviate"}},
	{"chroma", []string{"chroma", "chromadb"}},
	{"milvus", []string{"milvus"}},
	{"embeddings", []string{"embeddings", "vector embeddings", "sentence embeddings", "word embeddings"}},

	// Frontend
	{"react", []string{"react", "reactjs", "react.js", "react native"}},
	{"angular", []string{"angular", "angularjs", "angular.js"}},
	{"vue", []string{"vue", "vuejs", "vue.js", "nuxt", "nuxtjs"}},
	{"nextjs", []string{"nextjs", "next.js", "next"}},
	{"svelte", []string{"svelte", "sveltekit"}},
	{"html", []string{"html", "html5", "html/css"}},
	{"css", []string{"css", "css3", "sass", "scss", "less", "tailwind", "tailwindcss", "bootstrap"}},

	// Backend & runtime
	{"node", []string{"node", "nodejs", "node.js"}},
	{"fastapi", []string{"fastapi", "fast api"}},
	{"django", []string{"django", "django rest framework", "drf"}},
	{"flask", []string{"flask"}},
	{"express", []string{"express", "expressjs", "express.js"}},
	{"spring", []string{"spring", "spring boot", "springboot", "spring framework"}},

	// Databases - SQL family
	{"sql", []string{"sql", "mysql", "postgresql", "postgres", "sqlite", "t-sql", "mssql", "sql server", "oracle", "oracle db", "mariadb", "rdbms", "relational database"}},
	{"postgresql", []string{"postgresql", "postgres", "psql", "pg"}},
	{"mysql", []string{"mysql", "mariadb"}},
	{"oracle", []string{"oracle", "oracle db", "oracle database", "plsql", "pl/sql"}},
	{"sql server", []string{"sql server", "mssql", "microsoft sql server", "t-sql"}},

	// Databases - NoSQL family
	{"nosql", []string{"nosql", "mongodb", "mongo", "dynamodb", "cassandra", "couchdb", "document database"}},
	{"mongodb", []string{"mongodb", "mongo", "mongoose"}},
	{"redis", []string{"redis", "elasticache"}},
	{"elasticsearch", []string{"elasticsearch", "elastic", "elk", "opensearch"}},
	{"cassandra", []string{"cassandra", "apache cassandra"}},
	{"dynamodb", []string{"dynamodb", "dynamo", "aws dynamodb"}},

	// Cloud
	{"aws", []string{"aws", "amazon web services", "amazon aws", "ec2", "s3", "lambda", "aws lambda"}},
	{"gcp", []string{"gcp", "google cloud", "google cloud platform", "bigquery"}},
	{"azure", []string{"azure", "microsoft azure", "azure cloud"}},
	{"cloud", []string{"cloud", "cloud computing", "cloud services", "cloud infrastructure"}},

	// DevOps & infrastructure
	{"docker", []string{"docker", "containerization", "containers", "dockerfile"}},
	{"kubernetes", []string{"kubernetes", "k8s", "k8", "eks", "aks", "gke"}},
	{"ci/cd", []string{"ci/cd", "cicd", "continuous integration", "continuous deployment", "jenkins", "github actions", "gitlab ci", "circleci", "travis"}},
	{"terraform", []string{"terraform", "iac", "infrastructure as code", "terragrunt"}},
	{"ansible", []string{"ansible", "ansible playbook"}},
	{"helm", []string{"helm", "helm charts"}},
	{"linux", []string{"linux", "unix", "ubuntu", "centos", "redhat", "rhel", "debian"}},

	// APIs
	{"rest", []string{"rest", "restful", "rest api", "restful api", "api", "apis", "web api"}},
	{"graphql", []string{"graphql", "gql", "apollo"}},
	{"grpc", []string{"grpc", "protobuf", "protocol buffers"}},

	// Data engineering
	{"data engineering", []string{"data engineering", "data engineer", "de", "etl", "data pipeline", "data pipelines"}},
	{"spark", []string{"spark", "apache spark", "pyspark", "spark sql"}},
	{"kafka", []string{"kafka", "apache kafka", "kafka streams"}},
	{"airflow", []string{"airflow", "apache airflow", "dag"}},
	{"hadoop", []string{"hadoop", "hdfs", "mapreduce", "hive"}},
	{"databricks", []string{"databricks"}},
	{"snowflake", []string{"snowflake"}},
	{"dbt", []string{"dbt", "data build tool"}},

	// Data analysis
	{"pandas", []string{"pandas", "dataframe"}},
	{"numpy", []string{"numpy", "np"}},
	{"scipy", []string{"scipy"}},
	{"matplotlib", []string{"matplotlib", "pyplot"}},
	{"tableau", []string{"tableau"}},
	{"power bi", []string{"power bi", "powerbi"}},
	{"excel", []string{"excel", "microsoft excel", "spreadsheet"}},

	// ML frameworks
	{"tensorflow", []string{"tensorflow", "tf", "tf2"}},
	{"pytorch", []string{"pytorch", "torch"}},
	{"scikit-learn", []string{"scikit-learn", "sklearn", "scikit learn"}},
	{"keras", []string{"keras"}},
	{"huggingface", []string{"huggingface", "hugging face", "transformers", "hf"}},
	{"xgboost", []string{"xgboost", "xgb"}},
	{"lightgbm", []string{"lightgbm", "lgbm"}},

	// MLOps & DevOps
	{"mlops", []string{"mlops", "ml ops", "machine learning operations"}},
	{"devops", []string{"devops", "dev ops", "sre", "site reliability"}},
	{"monitoring", []string{"monitoring", "observability", "prometheus", "grafana", "datadog", "new relic"}},

	// Testing
	{"testing", []string{"testing", "unit testing", "test automation", "qa", "quality assurance"}},
	{"selenium", []string{"selenium", "webdriver"}},
	{"pytest", []string{"pytest", "py.test"}},
	{"jest", []string{"jest"}},
	{"cypress", []string{"cypress"}},

	// Security
	{"security", []string{"security", "cybersecurity", "infosec", "information security"}},
	{"oauth", []string{"oauth", "oauth2", "authentication", "authorization"}},

	// Methodologies
	{"agile", []string{"agile", "scrum", "kanban", "sprint"}},
	{"git", []string{"git", "github", "gitlab", "bitbucket", "version control", "vcs"}},

	// Mobile
	{"android", []string{"android", "android development", "android sdk"}},
	{"ios", []string{"ios", "ios development", "xcode"}},
	{"mobile", []string{"mobile", "mobile development", "mobile app"}},
	{"flutter", []string{"flutter", "dart"}},
	{"react native", []string{"react native", "rn"}},

	// Big data
	{"big data", []string{"big data", "large scale data", "distributed systems"}},
}

// surfaceIndex maps a lowercased surface form to its canonical key so that
// NormalizeSkill is a single map lookup instead of a scan over all groups.
var surfaceIndex = buildSurfaceIndex()

func buildSurfaceIndex() map[string]string {
	idx := make(map[string]string, len(synonymGroups)*4)
	for _, g := range synonymGroups {
		for _, surface := range g.surfaces {
			if _, ok := idx[surface]; ok {
				continue
			}
			idx[surface] = g.canonical
		}
	}
	return idx
}

// AmbiguousSurfaceForms lists surface forms declared in more than one synonym
// group. They still normalize deterministically (first group wins); the list
// keeps table collisions visible.
func AmbiguousSurfaceForms() []string {
	counts := make(map[string]int)
	for _, g := range synonymGroups {
		for _, surface := range g.surfaces {
			counts[surface]++
		}
	}
	out := make([]string, 0)
	for surface, n := range counts {
		if n > 1 {
			out = append(out, surface)
		}
	}
	sort.Strings(out)
	return out
}

// NormalizeSkill lower-cases and trims the skill and maps it to its canonical
// form. Unknown skills pass through unchanged.
func NormalizeSkill(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := surfaceIndex[normalized]; ok {
		return canonical
	}
	return normalized
}

func normalizeSkillSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		out[NormalizeSkill(s)] = struct{}{}
	}
	return out
}
