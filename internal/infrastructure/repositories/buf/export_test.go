package buf

// NewAnalyzerRepositoryWithLookPath creates an analyzer with a custom PATH lookup for testing.
func NewAnalyzerRepositoryWithLookPath(lookPath func(string) (string, error)) *BufAnalyzerRepository {
	return &BufAnalyzerRepository{lookPath: lookPath}
}
