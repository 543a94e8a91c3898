package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	loginFailedMsg    = "Incorrect username or password."
	signupInvalidMsg  = "Username and password are required."
	signupConflictMsg = "That username is already taken."
	messageMissingMsg = "Message not found."
)
