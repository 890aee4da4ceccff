// Package sources derives the expected voice assets from the application
// source tree: activity intros declared in ActivityInfo.qml files, word lists
// of the imageid activity, and the letter sequences of the gletters activity.
package sources
