// forge-cli is the command-line client for forge-server.
//
// Usage:
//
//	forge-cli --server localhost:5080 mint --name "Soul Coin" --symbol SOUL --supply 1000000000
//	forge-cli status tsop-01h2xcejqtf2nbrexx3vqjhp41
//	forge-cli convert 1000000000
//	forge-cli health
package main
