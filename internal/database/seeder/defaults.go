package seeder

func Defaults() []Seeder {
	return []Seeder{
		SchemaSeeder{},
		DemoCandidateSeeder{},
	}
}
