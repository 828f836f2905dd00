package session

var Unseen = unseen
