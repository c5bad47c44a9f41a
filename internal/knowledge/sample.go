package knowledge

import "elimuhub-agent/internal/models"

// SampleAggregate returns the bundled starter data the ingestion tool seeds
// the knowledge base with.
func SampleAggregate() *Aggregate {
	return &Aggregate{
		Programs: []models.ProgramRecord{
			{
				ID:                   "usa-001",
				Country:              "USA",
				University:           "Harvard University",
				Program:              "Computer Science",
				Duration:             "4 years",
				TuitionFee:           "$54,000/year",
				Requirements:         []string{"SAT: 1500+", "GPA: 3.8+", "TOEFL: 100+"},
				Deadline:             "January 1",
				ScholarshipAvailable: true,
			},
			{
				ID:                   "uk-001",
				Country:              "UK",
				University:           "University of Oxford",
				Program:              "Engineering",
				Duration:             "3 years",
				TuitionFee:           "£28,000/year",
				Requirements:         []string{"A-levels: A*AA", "IELTS: 7.0+"},
				Deadline:             "October 15",
				ScholarshipAvailable: true,
			},
			{
				ID:                   "canada-001",
				Country:              "Canada",
				University:           "University of Toronto",
				Program:              "Business Administration",
				Duration:             "4 years",
				TuitionFee:           "CAD 45,000/year",
				Requirements:         []string{"High School Diploma", "IELTS: 6.5+"},
				Deadline:             "January 13",
				ScholarshipAvailable: true,
			},
		},
		Visas: map[string]models.VisaRecord{
			"USA": {
				VisaType: "F-1 Student Visa",
				Requirements: []string{
					"Valid passport",
					"Form I-20",
					"SEVIS fee receipt",
					"Financial proof",
					"Academic transcripts",
					"English proficiency test scores",
				},
				ProcessingTime:    "3-5 weeks",
				Fee:               "$510",
				InterviewRequired: "true",
			},
			"UK": {
				VisaType: "Tier 4 Student Visa",
				Requirements: []string{
					"CAS from university",
					"Financial proof (£1,334/month for London)",
					"TB test certificate",
					"Academic qualifications",
					"English proficiency (IELTS/TOEFL)",
				},
				ProcessingTime:    "3 weeks",
				Fee:               "£363",
				InterviewRequired: "Sometimes",
			},
			"Canada": {
				VisaType: "Study Permit",
				Requirements: []string{
					"Letter of acceptance",
					"Proof of financial support",
					"Passport photos",
					"Medical exam",
					"Police certificate",
				},
				ProcessingTime:    "8 weeks",
				Fee:               "CAD 150",
				InterviewRequired: "false",
			},
			"Australia": {
				VisaType: "Student Visa (subclass 500)",
				Requirements: []string{
					"CoE from institution",
					"Genuine Temporary Entrant requirement",
					"Health insurance (OSHC)",
					"English proficiency",
					"Financial capacity proof",
				},
				ProcessingTime:    "4-6 weeks",
				Fee:               "AUD 630",
				InterviewRequired: "Rarely",
			},
		},
		Tuition: []models.TuitionRecord{
			{
				Program:  "IGCSE",
				Subjects: []string{"Mathematics", "Physics", "Chemistry", "Biology", "English"},
				Duration: "2 years",
				FeeStructure: map[string]string{
					"per_subject":  "KES 15,000/term",
					"full_program": "KES 120,000/year",
				},
				Features: []string{"Expert tutors", "Regular assessments", "Mock exams", "University guidance"},
			},
			{
				Program:  "A-Levels",
				Subjects: []string{"Mathematics", "Further Mathematics", "Physics", "Chemistry", "Biology"},
				Duration: "2 years",
				FeeStructure: map[string]string{
					"per_subject":  "KES 18,000/term",
					"full_program": "KES 150,000/year",
				},
				Features: []string{"Cambridge curriculum", "University preparation", "Career counseling", "Research projects"},
			},
			{
				Program:  "SAT Preparation",
				Subjects: []string{"Math", "Evidence-Based Reading and Writing"},
				Duration: "3 months",
				FeeStructure: map[string]string{
					"intensive": "KES 50,000",
					"regular":   "KES 35,000",
				},
				Features: []string{"Full-length practice tests", "Score improvement guarantee", "Personalized study plan", "College application guidance"},
			},
		},
		Guides: map[string]models.GuideRecord{
			"USA_Application_Guide": {
				Steps: []string{
					"Research universities and programs",
					"Take required tests (SAT/ACT, TOEFL/IELTS)",
					"Prepare application documents",
					"Write personal statement/essays",
					"Get recommendation letters",
					"Complete online application",
					"Submit financial documents",
					"Apply for student visa",
				},
				Timeline: "Start 12-18 months before intake",
				ImportantDates: map[string]string{
					"Early Decision":   "November 1",
					"Regular Decision": "January 1-15",
					"Financial Aid":    "Varies by university",
				},
			},
			"UK_Application_Guide": {
				Steps: []string{
					"Register on UCAS",
					"Choose up to 5 courses",
					"Write personal statement",
					"Get reference letter",
					"Submit application",
					"Track application",
					"Receive offers",
					"Firm/insurance choices",
					"Apply for visa",
				},
				Timeline: "Start by June for September intake",
				ImportantDates: map[string]string{
					"Oxford/Cambridge": "October 15",
					"Most courses":     "January 25",
					"Art & Design":     "March 24",
				},
			},
		},
		FAQs: []models.FAQRecord{
			{
				Question: "How long does it take to get a student visa",
				Answer:   "Processing time depends on the country: USA takes 3-5 weeks, UK about 3 weeks, Canada up to 8 weeks and Australia 4-6 weeks.",
			},
			{
				Question: "Do I need IELTS or TOEFL to study abroad",
				Answer:   "Most universities require proof of English proficiency. IELTS and TOEFL are the most widely accepted tests; required scores vary by program.",
			},
			{
				Question: "Can I work while studying abroad",
				Answer:   "Most student visas allow part-time work, typically up to 20 hours per week during term time. Check the conditions of the specific visa.",
			},
			{
				Question: "How much money do I need to show for a visa",
				Answer:   "You must show enough to cover tuition plus living costs, for example £1,334 per month for London. Exact amounts depend on the country and city.",
			},
		},
	}
}
