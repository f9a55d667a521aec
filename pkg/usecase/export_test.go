package usecase

// Test helpers - exported for testing
var ResolveOwnersForTest = (*UseCase).resolveOwners
