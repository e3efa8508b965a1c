// Command diaryctl is the moodbook admin CLI: it applies migrations, runs
// analytics for a single user and purges a user's data. Output is JSON.
package main

func main() {
	Execute()
}
