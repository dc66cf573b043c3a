// Package services implements the driving port interfaces.
// Services contain what little orchestration this client needs and
// delegate all persistence to the remote backend via driven ports.
package services
