package clerkauth

var GithubLoginForTest = githubLogin
