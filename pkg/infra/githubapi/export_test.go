package githubapi

// Test helpers - exported for testing
var (
	MapRepositoryForTest = mapRepository
	MapPackagesForTest   = mapPackages
	WrapAPIErrorForTest  = wrapAPIError
)
