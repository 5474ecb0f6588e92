package services

import (
	"fmt"
	"strings"

	"promptshq/internal/models"
)

var diagramTemplates = map[models.DiagramType]string{
	models.DiagramFlowchart: `flowchart TD
    A[Start] --> B{Email exists?}
    B -->|Yes| C[Show error message]
    B -->|No| D[Create account]
    C --> E[End]
    D --> F[Send verification email]
    F --> G[Account created successfully]
    G --> E

    classDef startEnd fill:#e1f5fe
    classDef process fill:#f3e5f5
    classDef decision fill:#fff3e0

    class A,E startEnd
    class D,F,G process
    class B decision`,

	models.DiagramSequence: `sequenceDiagram
    participant C as Web Client
    participant A as Auth Service
    participant D as Database

    C->>A: POST /login (credentials)
    A->>D: Query user by email
    D-->>A: User data
    A->>A: Verify password
    A->>D: Update last login
    D-->>A: Success
    A-->>C: JWT token + user info

    Note over C,D: Successful authentication flow`,

	models.DiagramClass: `classDiagram
    class User {
        +Long id
        +String email
        +String name
        +Date createdAt
        +register()
        +login()
        +updateProfile()
    }

    class Product {
        +Long id
        +String name
        +BigDecimal price
        +String description
        +Integer stock
        +updateStock()
        +getDetails()
    }

    class Order {
        +Long id
        +Date orderDate
        +OrderStatus status
        +BigDecimal total
        +calculateTotal()
        +updateStatus()
    }

    class Payment {
        +Long id
        +PaymentMethod method
        +BigDecimal amount
        +PaymentStatus status
        +processPayment()
        +refund()
    }

    User "1" --> "*" Order : places
    Order "*" --> "*" Product : contains
    Order "1" --> "1" Payment : has`,

	models.DiagramState: `stateDiagram-v2
    [*] --> Pending
    Pending --> Confirmed : Payment received
    Pending --> Cancelled : Customer cancels
    Confirmed --> Processing : Order validated
    Processing --> Shipped : Items dispatched
    Shipped --> Delivered : Customer receives
    Delivered --> [*]
    Cancelled --> [*]

    Processing --> Cancelled : Out of stock
    Shipped --> Returned : Customer returns
    Returned --> Refunded
    Refunded --> [*]`,

	models.DiagramER: `erDiagram
    USER {
        int user_id PK
        string email UK
        string username UK
        string password_hash
        datetime created_at
        datetime updated_at
    }

    POST {
        int post_id PK
        int user_id FK
        string title
        text content
        datetime published_at
        datetime updated_at
        boolean is_published
    }

    COMMENT {
        int comment_id PK
        int post_id FK
        int user_id FK
        text content
        datetime created_at
        boolean is_approved
    }

    TAG {
        int tag_id PK
        string name UK
        string slug UK
        string description
    }

    POST_TAG {
        int post_id PK,FK
        int tag_id PK,FK
    }

    USER ||--o{ POST : "writes"
    USER ||--o{ COMMENT : "writes"
    POST ||--o{ COMMENT : "has"
    POST }o--o{ TAG : "tagged with"`,

	models.DiagramGantt: `gantt
    title Mobile App Development Timeline
    dateFormat  YYYY-MM-DD
    section Planning
    Requirements Analysis    :done, req, 2024-01-01, 2024-01-14
    Architecture Design     :done, arch, 2024-01-08, 2024-01-21

    section Design
    UI/UX Design            :active, design, 2024-01-15, 2024-02-05
    Prototyping             :design-proto, after design, 7d

    section Development
    Backend Development     :dev-back, 2024-02-06, 2024-04-01
    Frontend Development    :dev-front, 2024-02-13, 2024-04-08
    Integration             :integration, after dev-back, 14d

    section Testing
    Unit Testing            :test-unit, after dev-front, 7d
    Integration Testing     :test-int, after integration, 7d
    User Acceptance Testing :test-uat, after test-int, 7d

    section Deployment
    Production Setup        :deploy-setup, after test-uat, 3d
    App Store Submission    :deploy-store, after deploy-setup, 4d`,

	models.DiagramPie: `pie showData
    title Programming Languages in the Codebase
    "TypeScript" : 42
    "Go" : 27
    "Python" : 16
    "SQL" : 9
    "Shell" : 6`,

	models.DiagramGitGraph: `gitGraph
    commit id: "init"
    branch develop
    checkout develop
    commit id: "setup"
    branch feature/auth
    checkout feature/auth
    commit id: "login form"
    commit id: "token refresh"
    checkout develop
    merge feature/auth
    branch feature/search
    checkout feature/search
    commit id: "search index"
    checkout develop
    merge feature/search
    checkout main
    merge develop tag: "v1.0.0"`,

	models.DiagramOther: `flowchart TD
    A[Start] --> B[Process Description]
    B --> C[Generate Diagram]
    C --> D[Review Output]
    D --> E[End]`,
}

var diagramExamples = map[models.DiagramType]string{
	models.DiagramFlowchart: "Create a flowchart showing the user registration process: start -> check if email exists -> if yes, show error -> if no, create account -> send verification email -> end",
	models.DiagramSequence:  "Show the sequence of API calls between a web client, authentication service, and database when a user logs in",
	models.DiagramClass:     "Design a class diagram for an e-commerce system with User, Product, Order, and Payment classes",
	models.DiagramState:     "Model the states of an order: pending -> confirmed -> processing -> shipped -> delivered",
	models.DiagramER:        "Create an entity relationship diagram for a blog system with users, posts, comments, and tags",
	models.DiagramGantt:     "Project timeline for developing a mobile app: planning (2 weeks) -> design (3 weeks) -> development (8 weeks) -> testing (2 weeks) -> deployment (1 week)",
	models.DiagramPie:       "Show the distribution of programming languages used in our codebase",
	models.DiagramGitGraph:  "Visualize a git workflow with main branch, feature branches, and merge points",
	models.DiagramOther:     "Outline the steps to turn a written description into a reviewed diagram",
}

// GenerateDiagram returns the Mermaid template for diagramType. The
// description is required but does not shape the output yet.
func GenerateDiagram(description string, diagramType models.DiagramType) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", invalid("description", "Please enter a description for your diagram.")
	}
	if diagramType == "" {
		return "", invalid("type", "Please select a diagram type.")
	}
	code, ok := diagramTemplates[diagramType]
	if !ok {
		return "", invalid("type", fmt.Sprintf("Unknown diagram type %q.", diagramType))
	}
	return code, nil
}

// DiagramExample returns a sample description for the "load example" button.
func DiagramExample(diagramType models.DiagramType) (string, error) {
	example, ok := diagramExamples[diagramType]
	if !ok {
		return "", invalid("type", fmt.Sprintf("Unknown diagram type %q.", diagramType))
	}
	return example, nil
}
