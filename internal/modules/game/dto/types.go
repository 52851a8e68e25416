package dto

type PlayInput struct {
	Prediction *int
	MinVal     *int
	MaxVal     *int
	GameMode   string
	Algorithm  string
}

type PlayOutput struct {
	Prediction    *int
	Generated     int
	Timestamp     string
	GameMode      string
	Algorithm     string
	MinVal        int
	MaxVal        int
	Hit           bool
	Distance      *int
	CurrentStreak int
	Warning       string
}

type StatsInput struct {
	TopN          int
	SpecialNumber *int
}

type NumberCount struct {
	Value int
	Count int
}

type StatsOutput struct {
	TotalAttempts    int
	TotalPredictions int
	TotalHits        int
	HitRate          float64
	AverageDistance  *float64
	CurrentStreak    int
	LongestStreak    int
	HotNumbers       []NumberCount
	ColdNumbers      []int
	SpecialNumber    int
	SpecialCount     int
	Warning          string
}

type HistoryInput struct {
	Last int
}

type RecordOutput struct {
	Prediction *int
	Generated  int
	Timestamp  string
	GameMode   string
	Algorithm  string
	MinVal     int
	MaxVal     int
	Hit        bool
	Distance   *int
}

type HistoryOutput struct {
	Records []RecordOutput
	Warning string
}

type DistributionInput struct {
	Bins int
}

type DistributionOutput struct {
	Labels  []string
	Counts  []int
	Warning string
}

type ExportInput struct {
	Path string
}

type ExportOutput struct {
	Path    string
	Records int
	Warning string
}

type SettingsInput struct {
	MinVal        *int
	MaxVal        *int
	GameMode      *string
	Algorithm     *string
	Bins          *int
	TopN          *int
	SpecialNumber *int
}

type SettingsOutput struct {
	MinVal        int
	MaxVal        int
	GameMode      string
	Algorithm     string
	Bins          int
	TopN          int
	SpecialNumber int
}
